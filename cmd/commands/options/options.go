package options

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "options" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Build provisioning option sets and render provider requests",
		Long: `Build a validated provisioning option set and render the request payload
it would produce for a provider, without contacting any cloud API.`,
	}

	cmd.AddCommand(RenderCommand())
	cmd.AddCommand(WizardCommand())

	return cmd
}
