package cli

import (
	"github.com/keskad/xcp/pkgs/app"
	"github.com/spf13/cobra"
)

func NewSessionCommand(app *app.XcpApp) *cobra.Command {
	type Args struct {
		Mode uint8
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "session",
		Short: "Run the scripted demo exchange against the slave",
		Long: `Run the scripted demo exchange against the slave:
CONNECT, GET_STATUS, GET_ID, a SHORT_UPLOAD of the demo signal at 0x1000,
SET_MTA 0x2000 followed by DOWNLOAD and a read-back UPLOAD, DISCONNECT.

Every response is hex-dumped together with its decoded fields. A negative
response from the slave is reported but does not stop the sequence; a
transport timeout does.`,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SessionAction(cmdArgs.Mode)
		},
	}

	addServerFlags(command, app)
	command.Flags().Uint8VarP(&cmdArgs.Mode, "mode", "m", 0, "CONNECT mode byte")

	return command
}
