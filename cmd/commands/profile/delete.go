package profile

import (
	"fmt"

	"cloudmason/provm/internal/profiles"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "profile delete" command.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		Run:   runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) {
	store, err := profiles.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if err := store.Delete(args[0]); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if err := store.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "profile %q deleted\n", args[0])
}
