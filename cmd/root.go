package cmd

import (
	"os"

	optionscmd "cloudmason/provm/cmd/commands/options"
	profilecmd "cloudmason/provm/cmd/commands/profile"
	providerscmd "cloudmason/provm/cmd/commands/providers"
	"cloudmason/provm/internal/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "provm",
		Short: "Build and inspect VM provisioning requests across cloud providers",
		Long: `provm builds validated provisioning option sets for virtual machines and
renders the provider request each one produces, without talking to any
cloud API. Option presets can be saved as named profiles and reused.

Supported providers: SoftLayer, Hetzner.

Quick start:
  provm options render web-1 --domain-name example.com   # Render a SoftLayer order
  provm options wizard                                   # Interactive option builder
  provm profile set staging --disk-type SAN --hourly     # Save a preset
  provm options render web-1 --profile staging`,
	}

	cmd.AddCommand(optionscmd.NewCommand())
	cmd.AddCommand(profilecmd.NewCommand())
	cmd.AddCommand(providerscmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterDefaults()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
