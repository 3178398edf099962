package bitstring

import (
	"math/rand"
	"testing"
)

func TestParseAndString(t *testing.T) {
	b, err := Parse("100101")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	want := BitString{1, 0, 0, 1, 0, 1}
	if !b.Equals(want) {
		t.Errorf("parsed %v, want %v", b, want)
	}
	if b.String() != "100101" {
		t.Errorf("round trip produced %q", b.String())
	}
}

func TestParseEmpty(t *testing.T) {
	b, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("expected empty sequence, got %v", b)
	}
}

func TestParseInvalidChar(t *testing.T) {
	_, err := Parse("10021")
	e, ok := err.(InvalidCharError)
	if !ok {
		t.Fatalf("expected InvalidCharError, got %v", err)
	}
	if e.Pos != 3 || e.Char != '2' {
		t.Errorf("wrong error detail: %+v", e)
	}
}

func TestValidate(t *testing.T) {
	if err := (BitString{0, 1, 1, 0}).Validate(); err != nil {
		t.Errorf("valid sequence rejected: %v", err)
	}
	err := (BitString{0, 1, 7}).Validate()
	e, ok := err.(InvalidBitError)
	if !ok {
		t.Fatalf("expected InvalidBitError, got %v", err)
	}
	if e.Pos != 2 || e.Value != 7 {
		t.Errorf("wrong error detail: %+v", e)
	}
}

func TestFlip(t *testing.T) {
	b := MustParse("1010")
	if err := b.Flip(1); err != nil {
		t.Fatalf("unexpected flip error: %v", err)
	}
	if b.String() != "1110" {
		t.Errorf("flip produced %s", b)
	}
	if err := b.Flip(1); err != nil {
		t.Fatalf("unexpected flip error: %v", err)
	}
	if b.String() != "1010" {
		t.Errorf("double flip is not identity: %s", b)
	}
}

func TestFlipOutOfRange(t *testing.T) {
	b := MustParse("1010")
	for _, i := range []int{-1, 4, 100} {
		if err := b.Flip(i); err == nil {
			t.Errorf("flip at %d should fail", i)
		}
	}
	if b.String() != "1010" {
		t.Errorf("failed flip mutated the sequence: %s", b)
	}
}

func TestFlippedDoesNotMutate(t *testing.T) {
	b := MustParse("0001")
	c, err := b.Flipped(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "0001" {
		t.Errorf("receiver mutated: %s", b)
	}
	if c.String() != "1001" {
		t.Errorf("flipped copy is %s", c)
	}
}

func TestCloneIndependent(t *testing.T) {
	b := MustParse("1100")
	c := b.Clone()
	c[0] = 0
	if b[0] != 1 {
		t.Error("clone shares storage with original")
	}
}

func TestZeroOnes(t *testing.T) {
	if !Zero(5).AllZero() || Zero(5).AllOnes() {
		t.Error("Zero(5) is not all-zero")
	}
	if !Ones(5).AllOnes() || Ones(5).AllZero() {
		t.Error("Ones(5) is not all-one")
	}
	if !Zero(0).AllZero() || !Zero(0).AllOnes() {
		t.Error("empty sequence should be vacuously all-zero and all-one")
	}
}

func TestConcat(t *testing.T) {
	got := Concat(MustParse("10"), nil, MustParse("011"))
	if got.String() != "10011" {
		t.Errorf("concat produced %s", got)
	}
}

func TestEqualsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := r.Intn(64) + 1
		b := make(BitString, n)
		for j := range b {
			b[j] = byte(r.Intn(2))
		}
		if !b.Equals(b.Clone()) {
			t.Fatalf("sequence not equal to its clone: %s", b)
		}
		c, _ := b.Flipped(r.Intn(n))
		if b.Equals(c) {
			t.Fatalf("sequence equal to a corrupted copy: %s", b)
		}
	}
}
