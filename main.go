package main

import (
	"errors"
	"os"

	"github.com/keskad/xcp/pkgs/app"
	"github.com/keskad/xcp/pkgs/cli"
	"github.com/keskad/xcp/pkgs/xcp"
)

func main() {
	xcpApp := app.XcpApp{}
	cmd := cli.NewRootCommand(&xcpApp)
	args := os.Args
	if args != nil {
		args = args[1:]
		cmd.SetArgs(args)
	}
	err := cmd.Execute()
	if err != nil {
		// a slave that never answered is distinguishable by exit status
		if errors.Is(err, xcp.ErrTimeout) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
