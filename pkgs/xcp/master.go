package xcp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MTA is the master's mirror of the slave-held Memory Transfer Address:
// a 32-bit address plus an address extension. UPLOAD and DOWNLOAD operate
// at the slave's MTA implicitly; SET_MTA is the only command that moves it.
type MTA struct {
	Address   uint32
	Extension byte
}

// Exchange is the raw view of one round trip. Every operation result embeds
// it so the caller can dump exactly what went over the wire.
type Exchange struct {
	Request  []byte
	Response []byte
}

// Kind classifies the response by its packet identifier.
func (e Exchange) Kind() ResponseKind {
	return classify(e.Response)
}

// Err maps the response classification to the error the caller should
// report: nil for a positive response, *SlaveError for a negative one,
// an ErrMalformedResponse wrap for anything else.
func (e Exchange) Err() error {
	switch e.Kind() {
	case ResponsePositive:
		return nil
	case ResponseError:
		var code byte
		if len(e.Response) >= 2 {
			code = e.Response[1]
		}
		return &SlaveError{Code: code}
	}
	if len(e.Response) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrMalformedResponse)
	}
	return fmt.Errorf("%w: unexpected packet id 0x%02X", ErrMalformedResponse, e.Response[0])
}

// Master speaks the XCP command subset to a single slave over one Transport.
//
// Exchanges are strictly one-at-a-time: this subset has no sequence
// counters, so two in-flight requests over an unordered datagram transport
// could not be told apart. A Master must not be shared between goroutines.
type Master struct {
	transport Transport
	mta       MTA
}

// NewMaster takes ownership of the transport; Close releases it.
func NewMaster(t Transport) *Master {
	return &Master{transport: t}
}

// MTA returns the address state as of the last acknowledged SET_MTA.
func (m *Master) MTA() MTA {
	return m.mta
}

func (m *Master) Close() error {
	return m.transport.Close()
}

func (m *Master) exchange(req []byte) (Exchange, error) {
	logrus.Debugf("REQ (%d): % X", len(req), req)
	res, err := m.transport.Exchange(req)
	if err != nil {
		return Exchange{Request: req}, err
	}
	logrus.Debugf("RES (%d): % X", len(res), res)
	return Exchange{Request: req, Response: res}, nil
}

// ConnectResult carries the raw CONNECT exchange plus its typed fields.
// Info is only meaningful when Decoded is true (positive response of at
// least 8 bytes).
type ConnectResult struct {
	Exchange
	Info    ConnectInfo
	Decoded bool
}

func (m *Master) Connect(mode byte) (ConnectResult, error) {
	ex, err := m.exchange(buildConnectRequest(mode))
	if err != nil {
		return ConnectResult{Exchange: ex}, err
	}
	info, ok := parseConnectResponse(ex.Response)
	return ConnectResult{Exchange: ex, Info: info, Decoded: ok}, nil
}

func (m *Master) Disconnect() (Exchange, error) {
	return m.exchange(buildDisconnectRequest())
}

type StatusResult struct {
	Exchange
	Info    StatusInfo
	Decoded bool
}

func (m *Master) GetStatus() (StatusResult, error) {
	ex, err := m.exchange(buildGetStatusRequest())
	if err != nil {
		return StatusResult{Exchange: ex}, err
	}
	info, ok := parseStatusResponse(ex.Response)
	return StatusResult{Exchange: ex, Info: info, Decoded: ok}, nil
}

type IdentResult struct {
	Exchange
	Info    IdentInfo
	Decoded bool
}

func (m *Master) GetID() (IdentResult, error) {
	ex, err := m.exchange(buildGetIDRequest())
	if err != nil {
		return IdentResult{Exchange: ex}, err
	}
	info, ok := parseIdentResponse(ex.Response)
	return IdentResult{Exchange: ex, Info: info, Decoded: ok}, nil
}

// SetMTA points the slave's Memory Transfer Address at (addr, ext). The
// cached MTA is updated only on a positive response; an error or malformed
// response leaves the previous state untouched.
func (m *Master) SetMTA(addr uint32, ext byte) (Exchange, error) {
	ex, err := m.exchange(buildSetMTARequest(addr, ext))
	if err != nil {
		return ex, err
	}
	if ex.Kind() == ResponsePositive {
		m.mta = MTA{Address: addr, Extension: ext}
	}
	return ex, nil
}

// UploadResult carries the raw exchange plus the returned data bytes.
// Data is nil on an error or malformed response; a positive response to a
// count=0 request yields an empty non-nil slice.
type UploadResult struct {
	Exchange
	Data []byte
}

// Upload reads count bytes at the slave's current MTA. The slave advances
// its MTA past the bytes it returns.
func (m *Master) Upload(count byte) (UploadResult, error) {
	ex, err := m.exchange(buildUploadRequest(count))
	if err != nil {
		return UploadResult{Exchange: ex}, err
	}
	return UploadResult{Exchange: ex, Data: parseUploadResponse(ex.Response)}, nil
}

// ShortUpload reads count bytes at an explicit (addr, ext), without
// touching the MTA.
func (m *Master) ShortUpload(addr uint32, count byte, ext byte) (UploadResult, error) {
	ex, err := m.exchange(buildShortUploadRequest(addr, count, ext))
	if err != nil {
		return UploadResult{Exchange: ex}, err
	}
	return UploadResult{Exchange: ex, Data: parseUploadResponse(ex.Response)}, nil
}

// Download writes data at the slave's current MTA. Payloads longer than
// MaxElementCount are truncated to the wire limit, mirroring the one-byte
// count field; the excess is never transmitted.
func (m *Master) Download(data []byte) (Exchange, error) {
	if len(data) > MaxElementCount {
		logrus.Debugf("DOWNLOAD payload of %d bytes truncated to %d", len(data), MaxElementCount)
	}
	return m.exchange(buildDownloadRequest(data))
}
