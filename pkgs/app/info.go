package app

import "fmt"

// StatusAction connects, queries GET_STATUS and prints the decoded fields.
func (app *XcpApp) StatusAction(mode byte) error {
	if err := app.initializeMaster(); err != nil {
		return err
	}
	defer app.master.Close()

	if err := app.connectSlave(mode); err != nil {
		return err
	}
	defer app.disconnectSlave()

	status, err := app.master.GetStatus()
	if err != nil {
		return err
	}
	if resErr := status.Err(); resErr != nil {
		return resErr
	}
	if !status.Decoded {
		return fmt.Errorf("status response too short to decode (%d bytes)", len(status.Response))
	}

	app.printf("session=0x%02X prot_mask=0x%02X session_id=%d\n",
		status.Info.SessionStatus, status.Info.ProtectionMask, status.Info.SessionID)
	return nil
}

// IdentifyAction connects, queries GET_ID and prints the identifier.
func (app *XcpApp) IdentifyAction(mode byte) error {
	if err := app.initializeMaster(); err != nil {
		return err
	}
	defer app.master.Close()

	if err := app.connectSlave(mode); err != nil {
		return err
	}
	defer app.disconnectSlave()

	ident, err := app.master.GetID()
	if err != nil {
		return err
	}
	if resErr := ident.Err(); resErr != nil {
		return resErr
	}
	if !ident.Decoded {
		return fmt.Errorf("identification response too short to decode (%d bytes)", len(ident.Response))
	}

	app.printf("%s\n", ident.Info.Text())
	return nil
}

func (app *XcpApp) connectSlave(mode byte) error {
	con, err := app.master.Connect(mode)
	if err != nil {
		return err
	}
	if resErr := con.Err(); resErr != nil {
		return fmt.Errorf("cannot connect to slave: %w", resErr)
	}
	return nil
}

// disconnectSlave is best-effort teardown; the session is over either way.
func (app *XcpApp) disconnectSlave() {
	_, _ = app.master.Disconnect()
}
