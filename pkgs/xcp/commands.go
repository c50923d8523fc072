package xcp

import "encoding/binary"

// Request builders. All multi-byte fields are little-endian, matching the
// Intel byte order the slave announces in its CONNECT response.

func buildConnectRequest(mode byte) []byte {
	return []byte{CmdConnect, mode}
}

func buildDisconnectRequest() []byte {
	return []byte{CmdDisconnect}
}

func buildGetStatusRequest() []byte {
	return []byte{CmdGetStatus}
}

func buildGetIDRequest() []byte {
	return []byte{CmdGetID}
}

// SET_MTA: [0xF6, ext, address LE32]
func buildSetMTARequest(addr uint32, ext byte) []byte {
	req := make([]byte, 6)
	req[0] = CmdSetMTA
	req[1] = ext
	binary.LittleEndian.PutUint32(req[2:6], addr)
	return req
}

// UPLOAD: [0xF5, count] — reads count bytes at the current MTA
func buildUploadRequest(count byte) []byte {
	return []byte{CmdUpload, count}
}

// SHORT_UPLOAD: [0xF4, count, reserved, ext, address LE32]
func buildShortUploadRequest(addr uint32, count byte, ext byte) []byte {
	req := make([]byte, 8)
	req[0] = CmdShortUpload
	req[1] = count
	req[2] = 0x00
	req[3] = ext
	binary.LittleEndian.PutUint32(req[4:8], addr)
	return req
}

// DOWNLOAD: [0xF0, count, data...] — the count field is a single byte, so
// payloads longer than MaxElementCount are truncated on the wire. Slaves
// size their receive handling around this limit; clipping differently
// would break interoperability.
func buildDownloadRequest(data []byte) []byte {
	if len(data) > MaxElementCount {
		data = data[:MaxElementCount]
	}
	req := make([]byte, 0, 2+len(data))
	req = append(req, CmdDownload, byte(len(data)))
	return append(req, data...)
}
