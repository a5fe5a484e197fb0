package patricia

import "testing"

func TestBranchingBit(t *testing.T) {
	cases := []struct {
		p0, p1, want keyt
	}{
		{0b0000, 0b0001, 0b0001},
		{0b0010, 0b0011, 0b0001},
		{0b0100, 0b0000, 0b0100},
		{0b1010, 0b1110, 0b0100},
		{0x8000_0000_0000_0000, 0, 0x8000_0000_0000_0000},
		{0xffff_ffff_ffff_ffff, 0x7fff_ffff_ffff_ffff, 0x8000_0000_0000_0000},
	}
	for _, c := range cases {
		got := branchingBit(c.p0, c.p1)
		if got != c.want {
			t.Errorf("branchingBit(%#x, %#x) = %#x, want %#x", c.p0, c.p1, got, c.want)
		}
		if got == 0 || got&(got-1) != 0 {
			t.Errorf("branchingBit(%#x, %#x) = %#x is not a single bit", c.p0, c.p1, got)
		}
	}
}

func TestPrefixMask(t *testing.T) {
	cases := []struct {
		key, bit, want keyt
	}{
		{0b1011, 0b0100, 0b0011},
		{0b1011, 0b0001, 0b0000},
		{0b1011, 0b1000, 0b0011},
		{0xffff_ffff_ffff_ffff, 0x8000_0000_0000_0000, 0x7fff_ffff_ffff_ffff},
	}
	for _, c := range cases {
		if got := prefixMask(c.key, c.bit); got != c.want {
			t.Errorf("prefixMask(%#x, %#x) = %#x, want %#x", c.key, c.bit, got, c.want)
		}
	}
}

func TestMatchPrefix(t *testing.T) {
	// Keys 0b1011 and 0b0011 agree up to bit position 3.
	bit := branchingBit(0b1011, 0b0011)
	if bit != 0b1000 {
		t.Fatalf("unexpected branching bit %#x", bit)
	}
	prefix := prefixMask(0b1011, bit)
	if !matchPrefix(0b1011, prefix, bit) || !matchPrefix(0b0011, prefix, bit) {
		t.Errorf("keys do not match their own branch prefix")
	}
	if matchPrefix(0b0010, prefix, bit) {
		t.Errorf("key 0b0010 must not match prefix %#x/%#x", prefix, bit)
	}
}

func TestZeroBit(t *testing.T) {
	if !zeroBit(0b0011, 0b0100) {
		t.Errorf("bit 2 of 0b0011 should read as zero")
	}
	if zeroBit(0b0100, 0b0100) {
		t.Errorf("bit 2 of 0b0100 should read as one")
	}
	if zeroBit(0x8000_0000_0000_0000, 0x8000_0000_0000_0000) {
		t.Errorf("sign bit must be visible to zeroBit")
	}
}

func TestMaskOrderingIsUnsigned(t *testing.T) {
	// A mask at the topmost position must order above every other mask.
	// With signed comparison it would order below all of them, which is
	// the historical defect this package guards against.
	top := keyt(0x8000_0000_0000_0000)
	if !(keyt(1) < top) {
		t.Errorf("mask ordering is not unsigned")
	}
	if int64(top) > 0 {
		t.Errorf("test premise broken: top bit should be the sign bit of int64")
	}
}
