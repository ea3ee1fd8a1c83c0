package rtltcp

// GainSchedule is the ordered, zero-based list of gain values (tenths of a
// dB) a tuner supports. It is static data, one schedule per tuner type.
type GainSchedule []int32

// unknownGainCount is the fallback schedule length used when the tuner
// type isn't one of the known enumerants (source comment: "Most likely it
// is the R820T tuner").
const unknownGainCount = 29

// Gain tables in tenths of a dB, as reported by librtlsdr for each tuner
// family. R820T and R828D share one table, same as upstream librtlsdr.
var (
	e4000Gains = GainSchedule{
		-10, 15, 40, 65, 90, 115, 140, 165, 190, 215,
		240, 290, 340, 420,
	}
	fc0012Gains = GainSchedule{
		-99, -40, 71, 179, 192,
	}
	fc0013Gains = GainSchedule{
		-99, -73, -65, -63, -60, -58, -54, 58, 61, 63,
		65, 67, 68, 70, 71, 179, 181, 182, 184, 186,
		188, 191, 197,
	}
	fc2580Gains = GainSchedule{
		0,
	}
	r82xxGains = GainSchedule{
		0, 9, 14, 27, 37, 77, 87, 125, 144, 157,
		166, 197, 207, 229, 254, 280, 297, 328, 338, 364,
		372, 386, 402, 421, 434, 439, 445, 480, 496,
	}
)

// scheduleFor returns the gain schedule and length for the given tuner.
// Unknown tuners resolve to a nil schedule with the fallback length.
func scheduleFor(t Tuner) (GainSchedule, int) {
	switch t {
	case TunerE4000:
		return e4000Gains, len(e4000Gains)
	case TunerFC0012:
		return fc0012Gains, len(fc0012Gains)
	case TunerFC0013:
		return fc0013Gains, len(fc0013Gains)
	case TunerFC2580:
		return fc2580Gains, len(fc2580Gains)
	case TunerR820T, TunerR828D:
		return r82xxGains, len(r82xxGains)
	default:
		return nil, unknownGainCount
	}
}

// gainCountFor returns the gain schedule length for tuner t, the fallback
// 29 for an unknown tuner.
func gainCountFor(t Tuner) int {
	_, n := scheduleFor(t)
	return n
}

// gainValueFor resolves a gain index to a gain value for tuner t, in
// tenths of a dB converted to dB (float). Matches the original's
// getGainValue: unknown tuner always resolves to 0; an index at or past
// the schedule length resolves to a 999.0 "max gain" sentinel rather than
// an error.
func gainValueFor(t Tuner, index uint16) float32 {
	if t == TunerUnknown {
		return 0
	}
	schedule, count := scheduleFor(t)
	if count == 0 {
		return 0
	}
	if int(index) >= count {
		return 999.0
	}
	return float32(schedule[index]) / 10.0
}
