package profile

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "profile" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved provisioning profiles",
		Long: "Save, inspect, and delete named provisioning option presets.\n\n" +
			"Profiles are stored at ~/.config/provm/profiles.json and seed\n" +
			"\"options render\" through --profile.",
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}
