package options

import (
	"fmt"

	"cloudmason/provm/cmd/commands/flags"
	"cloudmason/provm/internal/profiles"
	"cloudmason/provm/internal/providers"
	"cloudmason/provm/internal/util"

	"github.com/spf13/cobra"
)

// RenderCommand returns the "options render" command.
func RenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <hostname>",
		Short: "Render the provider request for an option set",
		Long: `Build an option set from a profile and/or flags and print the provider
request payload it produces.

Flags override profile fields; profile fields the flags leave alone are
kept. Fields never set anywhere stay off the payload entirely.

Examples:
  # SoftLayer order with a custom ordering domain and two disks
  provm options render web-1 --domain-name example.com --block-device 25 --block-device 100

  # Seed from a saved profile, override one field
  provm options render web-1 --profile staging --hourly=false

  # Hetzner create request
  provm options render web-1 --provider hetzner --server-type cpx11 --image ubuntu-24.04`,
		Args:         cobra.ExactArgs(1),
		RunE:         runRender,
		SilenceUsage: true,
	}

	flags.AddProvisioning(cmd)
	cmd.Flags().String("provider", "", "Provider to render for (default: profile's provider, else softlayer)")
	cmd.Flags().String("profile", "", "Profile to seed the option set from")
	cmd.Flags().StringP("output", "o", "", "Output format: table or json (default: table on a terminal, json otherwise)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	hostname := args[0]

	flagSet, err := flags.Profile(cmd)
	if err != nil {
		return err
	}

	var preset profiles.Profile
	profileName, _ := cmd.Flags().GetString("profile")
	if profileName != "" {
		store, err := profiles.Load()
		if err != nil {
			return err
		}
		preset, err = store.Get(profileName)
		if err != nil {
			return err
		}
	}

	providerFlag, _ := cmd.Flags().GetString("provider")
	providerName := util.FirstNonEmpty(providerFlag, preset.Provider, "softlayer")

	ext, err := providers.New(providerName)
	if err != nil {
		return err
	}

	// Flags overlay the profile: a flag overrides the profile's field,
	// while profile fields the flags never mention survive.
	if err := preset.Merge(flagSet).Apply(ext); err != nil {
		if profileName != "" {
			return fmt.Errorf("profile %q: %w", profileName, err)
		}
		return err
	}

	payload, err := ext.Request(hostname)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}
	if format == "json" {
		return printJSON(cmd, payload)
	}
	return printTable(cmd, providerName, hostname, payload)
}
