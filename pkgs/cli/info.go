package cli

import (
	"github.com/keskad/xcp/pkgs/app"
	"github.com/spf13/cobra"
)

func NewStatusCommand(app *app.XcpApp) *cobra.Command {
	type Args struct {
		Mode uint8
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "status",
		Short: "Query the session status of the slave",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.StatusAction(cmdArgs.Mode)
		},
	}

	addServerFlags(command, app)
	command.Flags().Uint8VarP(&cmdArgs.Mode, "mode", "m", 0, "CONNECT mode byte")

	return command
}

func NewIDCommand(app *app.XcpApp) *cobra.Command {
	type Args struct {
		Mode uint8
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "id",
		Short: "Read the identification string of the slave",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.IdentifyAction(cmdArgs.Mode)
		},
	}

	addServerFlags(command, app)
	command.Flags().Uint8VarP(&cmdArgs.Mode, "mode", "m", 0, "CONNECT mode byte")

	return command
}
