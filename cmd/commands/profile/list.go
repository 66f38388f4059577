package profile

import (
	"fmt"
	"text/tabwriter"

	"cloudmason/provm/internal/profiles"

	"github.com/spf13/cobra"
)

// ListCommand returns the "profile list" command.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		Run:   runList,
	}
}

func runList(cmd *cobra.Command, args []string) {
	store, err := profiles.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	names := store.Names()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles saved.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROVIDER")
	for _, name := range names {
		p, _ := store.Get(name)
		provider := p.Provider
		if provider == "" {
			provider = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", name, provider)
	}
	w.Flush()
}
