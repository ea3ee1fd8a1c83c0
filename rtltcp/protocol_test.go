package rtltcp

import "testing"

func TestDongleInfoValid(t *testing.T) {
	valid := DongleInfo{Magic: [4]byte{'R', 'T', 'L', '0'}, Tuner: TunerR820T, GainCount: 29}
	if !valid.Valid() {
		t.Fatal("expected RTL0 magic to be valid")
	}

	invalid := DongleInfo{Magic: [4]byte{'X', 'X', 'X', 'X'}}
	if invalid.Valid() {
		t.Fatal("expected non-RTL0 magic to be invalid")
	}
}

func TestTunerString(t *testing.T) {
	cases := map[Tuner]string{
		TunerUnknown: "UNKNOWN",
		TunerE4000:   "E4000",
		TunerFC0012:  "FC0012",
		TunerFC0013:  "FC0013",
		TunerFC2580:  "FC2580",
		TunerR820T:   "R820T",
		TunerR828D:   "R828D",
		Tuner(99):    "UNKNOWN",
	}
	for tuner, want := range cases {
		if got := tuner.String(); got != want {
			t.Errorf("Tuner(%d).String() = %q, want %q", tuner, got, want)
		}
	}
}

func TestCommandEncodeRoundTrip(t *testing.T) {
	params := []int32{0, 1, -1, 100000000, -100000000, 2147483647, -2147483648}
	for _, param := range params {
		cmd := command{cmd: cmdSetFrequency, param: param}
		encoded := cmd.encode()
		decoded := decodeCommand(encoded)
		if decoded != cmd {
			t.Errorf("round-trip mismatch for param %d: got %+v", param, decoded)
		}
	}
}

func TestCommandEncodeByteOrder(t *testing.T) {
	cmd := command{cmd: 0x04, param: 0x01020304}
	got := cmd.encode()
	want := [5]byte{0x04, 0x01, 0x02, 0x03, 0x04}
	if got != want {
		t.Fatalf("encode() = %v, want %v", got, want)
	}
}
