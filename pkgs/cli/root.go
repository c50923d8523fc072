package cli

import (
	"github.com/keskad/xcp/pkgs/app"
	"github.com/spf13/cobra"
)

func NewRootCommand(app *app.XcpApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "xcp",
		Short: "XCP master for measurement and calibration slaves over UDP",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(NewSessionCommand(app))
	command.AddCommand(NewStatusCommand(app))
	command.AddCommand(NewIDCommand(app))
	command.AddCommand(NewReadCommand(app))
	command.AddCommand(NewWriteCommand(app))

	return command
}

// addServerFlags wires the connection flags every subcommand shares. Zero
// values mean "use the configuration file".
func addServerFlags(command *cobra.Command, app *app.XcpApp) {
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().StringVarP(&app.Host, "host", "H", "", "Slave address (default from config)")
	command.Flags().Uint16VarP(&app.Port, "port", "p", 0, "Slave UDP port (default from config)")
	command.Flags().Uint16VarP(&app.TimeoutSeconds, "timeout", "", 0, "Response timeout in seconds (default from config)")
}
