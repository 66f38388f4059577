package profile

import (
	"fmt"

	"cloudmason/provm/cmd/commands/flags"
	"cloudmason/provm/internal/profiles"
	"cloudmason/provm/internal/providers"

	"github.com/spf13/cobra"
)

// SetCommand returns the "profile set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or update a profile",
		Long: `Create or update a named provisioning profile from flags.

Updating merges: only the flags you pass change; the profile's other
fields are kept.

Examples:
  provm profile set staging --disk-type SAN --hourly --inbound-port 22 --inbound-port 443
  provm profile set staging --domain-name example.com`,
		Args: cobra.ExactArgs(1),
		Run:  runSet,
	}

	flags.AddProvisioning(cmd)
	cmd.Flags().String("provider", "", "Provider this profile targets")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) {
	name := args[0]

	overlay, err := flags.Profile(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if cmd.Flags().Changed("provider") {
		providerName, _ := cmd.Flags().GetString("provider")
		if _, err := providers.New(providerName); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Registered providers: %v\n", providers.List())
			return
		}
		overlay.Provider = providerName
	}

	store, err := profiles.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	// Existing profile, if any, is the base; changed flags overlay it.
	existing, _ := store.Get(name)
	store.Set(name, existing.Merge(overlay))

	if err := store.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "profile %q saved\n", name)
}
