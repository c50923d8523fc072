package app

import (
	"fmt"
	"time"

	"github.com/keskad/xcp/pkgs/config"
	"github.com/keskad/xcp/pkgs/output"
	"github.com/keskad/xcp/pkgs/xcp"
	"github.com/sirupsen/logrus"
)

type XcpApp struct {
	Config *config.Configuration
	P      output.Printer
	master *xcp.Master

	// runtime parameters, zero value means "take it from the config"
	Debug          bool
	Host           string
	Port           uint16
	TimeoutSeconds uint16
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *XcpApp) Initialize() error {
	// logging
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if app.P == nil {
		app.P = output.ConsolePrinter{}
	}

	// configuration
	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig()
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %s", cfgErr)
	}

	// commandline overrides
	if app.Host != "" {
		cfg.Server.Address = app.Host
	}
	if app.Port != 0 {
		cfg.Server.Port = app.Port
	}
	if app.TimeoutSeconds != 0 {
		cfg.TimeoutSeconds = app.TimeoutSeconds
	}
	return nil
}

func (app *XcpApp) initializeMaster() error {
	logrus.Debug("Binding UDP transport to the XCP slave")
	transport, err := xcp.NewUDPTransport(app.Config.Server.Address, app.Config.Server.Port)
	if err != nil {
		return fmt.Errorf("cannot initialize app: %s", err)
	}
	transport.Timeout = time.Second * time.Duration(app.Config.TimeoutSeconds)
	app.master = xcp.NewMaster(transport)
	return nil
}
