// Package rtltcp implements the client side of the rtl_tcp wire protocol:
// a resilient TCP session to a remote RTL-SDR tuner, a paced two-stage
// sample pipeline, and a software AGC loop driving the tuner's gain index.
package rtltcp

import "fmt"

var dongleMagic = [4]byte{'R', 'T', 'L', '0'}

// DongleInfo is the 12-byte handshake record sent by the server as the
// first bytes of every new session.
type DongleInfo struct {
	Magic     [4]byte
	Tuner     Tuner
	GainCount uint32
}

// Valid reports whether Magic equals the expected "RTL0" byte string.
func (d DongleInfo) Valid() bool {
	return d.Magic == dongleMagic
}

func (d DongleInfo) String() string {
	return fmt.Sprintf("{Magic:%q Tuner:%s GainCount:%d}", d.Magic, d.Tuner, d.GainCount)
}

// Tuner enumerates the RTL-SDR tuner chips rtl_tcp can report.
type Tuner uint32

const (
	TunerUnknown Tuner = iota
	TunerE4000
	TunerFC0012
	TunerFC0013
	TunerFC2580
	TunerR820T
	TunerR828D
)

func (t Tuner) String() string {
	switch t {
	case TunerE4000:
		return "E4000"
	case TunerFC0012:
		return "FC0012"
	case TunerFC0013:
		return "FC0013"
	case TunerFC2580:
		return "FC2580"
	case TunerR820T:
		return "R820T"
	case TunerR828D:
		return "R828D"
	}
	return "UNKNOWN"
}

// Command bytes recognized by rtl_tcp.
const (
	cmdSetFrequency  uint8 = 0x01
	cmdSetSampleRate uint8 = 0x02
	cmdSetGainMode   uint8 = 0x03
	cmdSetGain       uint8 = 0x04
	cmdAndroidExit   uint8 = 0x7e
)

// command is the fixed 5-byte record: 1 command byte + 4 big-endian
// parameter bytes.
type command struct {
	cmd   uint8
	param int32
}

// encode serializes a command in wire order: [cmd, param>>24, param>>16,
// param>>8, param] (most-significant byte first).
func (c command) encode() [5]byte {
	p := uint32(c.param)
	return [5]byte{
		c.cmd,
		byte(p >> 24),
		byte(p >> 16),
		byte(p >> 8),
		byte(p),
	}
}

// decodeCommand is the inverse of encode, used by tests to verify the
// round-trip property of command encoding.
func decodeCommand(b [5]byte) command {
	p := uint32(b[1])<<24 | uint32(b[2])<<16 | uint32(b[3])<<8 | uint32(b[4])
	return command{cmd: b[0], param: int32(p)}
}
