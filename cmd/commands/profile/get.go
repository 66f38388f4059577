package profile

import (
	"encoding/json"
	"fmt"

	"cloudmason/provm/internal/profiles"

	"github.com/spf13/cobra"
)

// GetCommand returns the "profile get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print a profile as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) {
	store, err := profiles.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	p, err := store.Get(args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(p)
}
