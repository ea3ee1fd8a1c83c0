package rtltcp

import "testing"

func TestGainCountForKnownTuners(t *testing.T) {
	cases := map[Tuner]int{
		TunerE4000:  len(e4000Gains),
		TunerFC0012: len(fc0012Gains),
		TunerFC0013: len(fc0013Gains),
		TunerFC2580: len(fc2580Gains),
		TunerR820T:  len(r82xxGains),
		TunerR828D:  len(r82xxGains),
	}
	for tuner, want := range cases {
		if got := gainCountFor(tuner); got != want {
			t.Errorf("gainCountFor(%s) = %d, want %d", tuner, got, want)
		}
	}
}

func TestGainCountForUnknownTuner(t *testing.T) {
	if got := gainCountFor(TunerUnknown); got != unknownGainCount {
		t.Errorf("gainCountFor(Unknown) = %d, want %d", got, unknownGainCount)
	}
}

func TestGainValueForUnknownTunerIsZero(t *testing.T) {
	if got := gainValueFor(TunerUnknown, 0); got != 0 {
		t.Errorf("gainValueFor(Unknown, 0) = %v, want 0", got)
	}
}

func TestGainValueForInRangeIndex(t *testing.T) {
	got := gainValueFor(TunerR820T, 0)
	want := float32(r82xxGains[0]) / 10.0
	if got != want {
		t.Errorf("gainValueFor(R820T, 0) = %v, want %v", got, want)
	}
}

func TestGainValueForOutOfRangeIndexReturnsSentinel(t *testing.T) {
	got := gainValueFor(TunerR820T, uint16(len(r82xxGains)))
	if got != 999.0 {
		t.Errorf("gainValueFor(R820T, out-of-range) = %v, want 999.0 sentinel", got)
	}

	got = gainValueFor(TunerFC2580, 50)
	if got != 999.0 {
		t.Errorf("gainValueFor(FC2580, out-of-range) = %v, want 999.0 sentinel", got)
	}
}
