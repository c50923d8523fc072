package app

import (
	"bytes"
	"fmt"

	"github.com/keskad/xcp/pkgs/output"
	"github.com/keskad/xcp/pkgs/xcp"
)

// ReadMemoryAction reads count bytes at (addr, ext) via SHORT_UPLOAD and
// prints them as hex.
func (app *XcpApp) ReadMemoryAction(mode byte, addr uint32, count byte, ext byte) error {
	if err := app.initializeMaster(); err != nil {
		return err
	}
	defer app.master.Close()

	if err := app.connectSlave(mode); err != nil {
		return err
	}
	defer app.disconnectSlave()

	res, err := app.master.ShortUpload(addr, count, ext)
	if err != nil {
		return err
	}
	if resErr := res.Err(); resErr != nil {
		return fmt.Errorf("cannot read 0x%X: %w", addr, resErr)
	}

	app.printf("%s\n", output.HexBytes(res.Data))
	return nil
}

// WriteMemoryAction writes data at (addr, ext) via SET_MTA + DOWNLOAD.
// With verify set, the region is read back through a second SET_MTA +
// UPLOAD and compared against what was sent.
func (app *XcpApp) WriteMemoryAction(mode byte, addr uint32, ext byte, data []byte, verify bool) error {
	if len(data) > xcp.MaxElementCount {
		return fmt.Errorf("payload of %d bytes exceeds the %d-byte wire limit", len(data), xcp.MaxElementCount)
	}

	if err := app.initializeMaster(); err != nil {
		return err
	}
	defer app.master.Close()

	if err := app.connectSlave(mode); err != nil {
		return err
	}
	defer app.disconnectSlave()

	mta, err := app.master.SetMTA(addr, ext)
	if err != nil {
		return err
	}
	if resErr := mta.Err(); resErr != nil {
		return fmt.Errorf("cannot point MTA at 0x%X: %w", addr, resErr)
	}

	down, err := app.master.Download(data)
	if err != nil {
		return err
	}
	if resErr := down.Err(); resErr != nil {
		return fmt.Errorf("cannot write 0x%X: %w", addr, resErr)
	}

	if verify {
		// DOWNLOAD advanced the slave's MTA past the region, point it back
		if _, err := app.master.SetMTA(addr, ext); err != nil {
			return err
		}
		up, err := app.master.Upload(byte(len(data)))
		if err != nil {
			return err
		}
		if resErr := up.Err(); resErr != nil {
			return fmt.Errorf("cannot verify write at 0x%X: %w", addr, resErr)
		}
		if !bytes.Equal(up.Data, data) {
			return fmt.Errorf("cannot write 0x%X, the memory differs after a write", addr)
		}
	}

	app.printf("wrote %d bytes at 0x%X\n", len(data), addr)
	return nil
}
