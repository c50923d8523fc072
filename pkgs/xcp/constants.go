package xcp

// Command identifiers of the supported XCP subset. Single source of truth
// for the encoder and the decoder; extending the command set means adding
// a constant here and an encoder in commands.go.
const (
	CmdConnect     byte = 0xFF
	CmdDisconnect  byte = 0xFE
	CmdGetStatus   byte = 0xFD
	CmdGetID       byte = 0xFA
	CmdSetMTA      byte = 0xF6
	CmdUpload      byte = 0xF5
	CmdShortUpload byte = 0xF4
	CmdDownload    byte = 0xF0
)

// Packet identifiers discriminating the two response classes. Every slave
// response starts with one of these in its first byte.
const (
	PidPositive byte = 0xFF
	PidError    byte = 0xFE
)

// MaxElementCount is the most data bytes a single UPLOAD, SHORT_UPLOAD or
// DOWNLOAD can move: the count field on the wire is one byte.
const MaxElementCount = 255

// Standard XCP error codes carried in the second byte of a negative response.
const (
	ErrCodeCmdSynch      byte = 0x00
	ErrCodeCmdBusy       byte = 0x10
	ErrCodeDAQActive     byte = 0x11
	ErrCodePgmActive     byte = 0x12
	ErrCodeCmdUnknown    byte = 0x20
	ErrCodeCmdSyntax     byte = 0x21
	ErrCodeOutOfRange    byte = 0x22
	ErrCodeWriteProtect  byte = 0x23
	ErrCodeAccessDenied  byte = 0x24
	ErrCodeAccessLocked  byte = 0x25
	ErrCodePageNotValid  byte = 0x26
	ErrCodeModeNotValid  byte = 0x27
	ErrCodeSegNotValid   byte = 0x28
	ErrCodeSequence      byte = 0x29
	ErrCodeDAQConfig     byte = 0x2A
	ErrCodeMemoryOverrun byte = 0x30
	ErrCodeGeneric       byte = 0x31
	ErrCodeVerify        byte = 0x32
)

// Minimum response lengths per command before typed fields may be read.
const (
	connectResponseMinLen = 8
	statusResponseMinLen  = 8
	identResponseMinLen   = 3
)
