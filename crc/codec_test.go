package crc

import (
	"math/rand"
	"testing"

	"github.com/yangl1996/error-control-codes/bitstring"
)

func randomBits(r *rand.Rand, n int) bitstring.BitString {
	b := make(bitstring.BitString, n)
	for i := range b {
		b[i] = byte(r.Intn(2))
	}
	return b
}

// randomGenerator produces a valid generator of degree 1..8 with a
// trailing 1, the form used by every deployed CRC polynomial.
func randomGenerator(r *rand.Rand) bitstring.BitString {
	g := randomBits(r, r.Intn(8)+2)
	g[0] = 1
	g[len(g)-1] = 1
	return g
}

func TestChecksumKnown(t *testing.T) {
	cases := []struct {
		data, generator, want string
	}{
		{"1101011011", "1011", "100"},
		{"100100", "1101", "001"},
		{"1", "11", "1"},
	}
	for _, c := range cases {
		cks, err := Checksum(bitstring.MustParse(c.data), bitstring.MustParse(c.generator))
		if err != nil {
			t.Fatalf("unexpected error for %s/%s: %v", c.data, c.generator, err)
		}
		if cks.String() != c.want {
			t.Errorf("crc(%s, %s) = %s, want %s", c.data, c.generator, cks, c.want)
		}
	}
}

func TestEncodeSpecVector(t *testing.T) {
	codeword, err := Encode(bitstring.MustParse("1101011011"), bitstring.MustParse("1011"))
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if len(codeword) != 13 {
		t.Fatalf("codeword length %d, want 13", len(codeword))
	}
	if codeword.String() != "1101011011100" {
		t.Errorf("codeword is %s", codeword)
	}
	status, err := Verify(codeword, bitstring.MustParse("1011"))
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if status != Valid {
		t.Error("clean codeword did not verify")
	}
}

func TestRoundtripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		data := randomBits(r, r.Intn(64)+1)
		g := randomGenerator(r)
		codeword, err := Encode(data, g)
		if err != nil {
			t.Fatalf("encode failed (data=%s gen=%s): %v", data, g, err)
		}
		if len(codeword) != len(data)+len(g)-1 {
			t.Fatalf("codeword length %d for data %d, generator %d", len(codeword), len(data), len(g))
		}
		status, err := Verify(codeword, g)
		if err != nil {
			t.Fatalf("verify failed (data=%s gen=%s): %v", data, g, err)
		}
		if status != Valid {
			t.Fatalf("clean codeword reported %v (data=%s gen=%s)", status, data, g)
		}
	}
}

func TestNamedGenerators(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for _, g := range []bitstring.BitString{CRC3GSM, CRC4ITU, CRC8ATM} {
		data := randomBits(r, 40)
		codeword, err := Encode(data, g)
		if err != nil {
			t.Fatalf("encode failed for generator %s: %v", g, err)
		}
		status, _ := Verify(codeword, g)
		if status != Valid {
			t.Errorf("clean codeword rejected by generator %s", g)
		}
	}
}

func TestSingleFlipDetected(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, g := range []bitstring.BitString{bitstring.MustParse("11"), CRC3GSM, CRC4ITU} {
		data := randomBits(r, 24)
		codeword, err := Encode(data, g)
		if err != nil {
			t.Fatalf("unexpected encode error: %v", err)
		}
		for i := range codeword {
			corrupted, _ := codeword.Flipped(i)
			status, err := Verify(corrupted, g)
			if err != nil {
				t.Fatalf("unexpected verify error: %v", err)
			}
			if status != Corrupted {
				t.Errorf("flip at %d not detected (generator %s)", i, g)
			}
		}
	}
}

func TestVerifyShortReceived(t *testing.T) {
	status, err := Verify(bitstring.MustParse("101"), CRC4ITU)
	if err != nil {
		t.Fatalf("short received word should not error: %v", err)
	}
	if status != Corrupted {
		t.Error("word shorter than the generator should be Corrupted")
	}
}

func TestInvalidInput(t *testing.T) {
	data := bitstring.MustParse("1010")
	if _, err := Encode(data, nil); err == nil {
		t.Error("empty generator should fail")
	}
	if _, err := Encode(data, bitstring.MustParse("0101")); err == nil {
		t.Error("generator with leading 0 should fail")
	}
	if _, err := Encode(data, bitstring.MustParse("1")); err == nil {
		t.Error("degree-0 generator should fail")
	}
	if _, err := Encode(nil, CRC3GSM); err == nil {
		t.Error("empty data should fail")
	}
	if _, err := Encode(bitstring.BitString{1, 2}, CRC3GSM); err == nil {
		t.Error("non-binary digit should fail")
	}
	if _, err := Verify(data, bitstring.MustParse("011")); err == nil {
		t.Error("verify with a degenerate generator should fail")
	}
}
