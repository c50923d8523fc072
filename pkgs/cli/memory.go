package cli

import (
	"github.com/keskad/xcp/pkgs/app"
	"github.com/spf13/cobra"
)

func NewReadCommand(app *app.XcpApp) *cobra.Command {
	type Args struct {
		Mode uint8
		Ext  uint8
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "read ADDR COUNT",
		Short: "Read slave memory at an absolute address",
		Long: `Read COUNT bytes of slave memory at ADDR via SHORT_UPLOAD.

ADDR accepts decimal or 0x-prefixed hex; COUNT is 0-255.

Examples:
  xcp read 0x1000 4
  xcp read 4096 16 --ext 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			count, err := parseCount(args[1])
			if err != nil {
				return err
			}

			return app.ReadMemoryAction(cmdArgs.Mode, addr, count, cmdArgs.Ext)
		},
	}

	addServerFlags(command, app)
	command.Flags().Uint8VarP(&cmdArgs.Mode, "mode", "m", 0, "CONNECT mode byte")
	command.Flags().Uint8VarP(&cmdArgs.Ext, "ext", "e", 0, "Address extension")

	return command
}

func NewWriteCommand(app *app.XcpApp) *cobra.Command {
	type Args struct {
		Mode   uint8
		Ext    uint8
		Verify bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "write ADDR BYTES...",
		Short: "Write slave memory at an absolute address",
		Long: `Write BYTES of slave memory at ADDR via SET_MTA and DOWNLOAD.

BYTES are hex pairs, either separate arguments or one string; pass "-" as
the last argument to read them from stdin.

Examples:
  xcp write 0x2000 AA BB CC DD
  xcp write 0x2000 AABBCCDD --verify
  cat payload.hex | xcp write 0x2000 -- -`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			data, err := parseHexBytes(args[1:])
			if err != nil {
				return err
			}

			return app.WriteMemoryAction(cmdArgs.Mode, addr, cmdArgs.Ext, data, cmdArgs.Verify)
		},
	}

	addServerFlags(command, app)
	command.Flags().Uint8VarP(&cmdArgs.Mode, "mode", "m", 0, "CONNECT mode byte")
	command.Flags().Uint8VarP(&cmdArgs.Ext, "ext", "e", 0, "Address extension")
	command.Flags().BoolVarP(&cmdArgs.Verify, "verify", "", false, "Read the region back after writing and compare")

	return command
}
