package xcp

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned when no datagram arrives within the transport's
// read window. The master never retries; the caller decides what to do.
var ErrTimeout = errors.New("timeout waiting for slave response")

// ErrMalformedResponse is returned for a response that is present but fails
// the packet-identifier or minimum-length checks. It indicates a framing or
// transport problem, as opposed to SlaveError which the device reported
// deliberately.
var ErrMalformedResponse = errors.New("malformed response")

// SlaveError is a negative response from the slave. The session stays
// usable; further commands may be issued after receiving one.
type SlaveError struct {
	Code byte
}

func (e *SlaveError) Error() string {
	return fmt.Sprintf("slave reported %s (0x%02X)", errCodeName(e.Code), e.Code)
}

func errCodeName(code byte) string {
	switch code {
	case ErrCodeCmdSynch:
		return "ERR_CMD_SYNCH"
	case ErrCodeCmdBusy:
		return "ERR_CMD_BUSY"
	case ErrCodeDAQActive:
		return "ERR_DAQ_ACTIVE"
	case ErrCodePgmActive:
		return "ERR_PGM_ACTIVE"
	case ErrCodeCmdUnknown:
		return "ERR_CMD_UNKNOWN"
	case ErrCodeCmdSyntax:
		return "ERR_CMD_SYNTAX"
	case ErrCodeOutOfRange:
		return "ERR_OUT_OF_RANGE"
	case ErrCodeWriteProtect:
		return "ERR_WRITE_PROTECTED"
	case ErrCodeAccessDenied:
		return "ERR_ACCESS_DENIED"
	case ErrCodeAccessLocked:
		return "ERR_ACCESS_LOCKED"
	case ErrCodePageNotValid:
		return "ERR_PAGE_NOT_VALID"
	case ErrCodeModeNotValid:
		return "ERR_MODE_NOT_VALID"
	case ErrCodeSegNotValid:
		return "ERR_SEGMENT_NOT_VALID"
	case ErrCodeSequence:
		return "ERR_SEQUENCE"
	case ErrCodeDAQConfig:
		return "ERR_DAQ_CONFIG"
	case ErrCodeMemoryOverrun:
		return "ERR_MEMORY_OVERFLOW"
	case ErrCodeGeneric:
		return "ERR_GENERIC"
	case ErrCodeVerify:
		return "ERR_VERIFY"
	}
	return "unknown error code"
}
