package providers

import (
	"fmt"

	"cloudmason/provm/internal/providers"

	"github.com/spf13/cobra"
)

// NewCommand returns the "providers" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Inspect registered providers",
	}

	cmd.AddCommand(ListCommand())

	return cmd
}

// ListCommand returns the "providers list" command.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered providers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range providers.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
