package app

import (
	"github.com/keskad/xcp/pkgs/output"
	"github.com/keskad/xcp/pkgs/xcp"
)

// Demo addresses from the reference slave: a 4-byte signal at 0x1000 and a
// scratch calibration area at 0x2000.
const (
	demoSignalAddr  = 0x1000
	demoScratchAddr = 0x2000
)

var demoPayload = []byte{0xAA, 0xBB, 0xCC, 0xDD}

// SessionAction runs the full scripted exchange against the slave:
// CONNECT, GET_STATUS, GET_ID, SHORT_UPLOAD, SET_MTA + DOWNLOAD + UPLOAD,
// DISCONNECT. A negative response to one command does not stop the
// sequence; a transport failure does.
func (app *XcpApp) SessionAction(mode byte) error {
	if err := app.initializeMaster(); err != nil {
		return err
	}
	defer app.master.Close()

	app.printf("== CONNECT ==\n")
	con, err := app.master.Connect(mode)
	if err != nil {
		return err
	}
	app.reportExchange("CONNECT", con.Exchange)
	if con.Decoded {
		app.printf("  resources=0x%02X comm_mode=0x%02X MAX_CTO=%d MAX_DTO=%d PLver=%d TLver=%d\n",
			con.Info.Resources, con.Info.CommMode, con.Info.MaxCTO, con.Info.MaxDTO,
			con.Info.ProtocolVersion, con.Info.TransportVersion)
	}

	app.printf("\n== GET_STATUS ==\n")
	status, err := app.master.GetStatus()
	if err != nil {
		return err
	}
	app.reportExchange("GET_STATUS", status.Exchange)
	if status.Decoded {
		app.printf("  session=0x%02X prot_mask=0x%02X session_id=%d\n",
			status.Info.SessionStatus, status.Info.ProtectionMask, status.Info.SessionID)
	}

	app.printf("\n== GET_ID ==\n")
	ident, err := app.master.GetID()
	if err != nil {
		return err
	}
	app.reportExchange("GET_ID", ident.Exchange)
	if ident.Decoded {
		app.printf("  ID(mode=%d)='%s'\n", ident.Info.Mode, ident.Info.Text())
	}

	app.printf("\n== SHORT_UPLOAD addr=0x%04X n=%d ==\n", demoSignalAddr, len(demoPayload))
	short, err := app.master.ShortUpload(demoSignalAddr, byte(len(demoPayload)), 0)
	if err != nil {
		return err
	}
	app.reportExchange("SHORT_UPLOAD", short.Exchange)
	if short.Data != nil {
		app.printf("  data=%s\n", output.HexBytes(short.Data))
	}

	app.printf("\n== SET_MTA 0x%04X + DOWNLOAD [%s] + UPLOAD %d ==\n",
		demoScratchAddr, output.HexBytes(demoPayload), len(demoPayload))
	mta, err := app.master.SetMTA(demoScratchAddr, 0)
	if err != nil {
		return err
	}
	app.reportExchange("SET_MTA", mta)

	down, err := app.master.Download(demoPayload)
	if err != nil {
		return err
	}
	app.reportExchange("DOWNLOAD", down)

	up, err := app.master.Upload(byte(len(demoPayload)))
	if err != nil {
		return err
	}
	app.reportExchange("UPLOAD", up.Exchange)
	if up.Data != nil {
		app.printf("  data=%s\n", output.HexBytes(up.Data))
	}

	app.printf("\n== DISCONNECT ==\n")
	dis, err := app.master.Disconnect()
	if err != nil {
		return err
	}
	app.reportExchange("DISCONNECT", dis)

	return nil
}

func (app *XcpApp) printf(format string, a ...any) {
	_, _ = app.P.Printf(format, a...)
}

// reportExchange dumps the raw response and, for negative or malformed
// responses, the classified reason.
func (app *XcpApp) reportExchange(tag string, ex xcp.Exchange) {
	app.printf("%s\n", output.HexDump(tag+".res", ex.Response))
	if err := ex.Err(); err != nil {
		app.printf("  %s\n", err.Error())
	}
}
