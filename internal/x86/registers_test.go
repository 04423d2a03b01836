package x86

import "testing"

func TestRegisterRanges(t *testing.T) {
	if !XMM0.IsXMM() || !XMM31.IsXMM() {
		t.Error("xmm range boundaries misclassified")
	}
	if XMM31.IsYMM() || YMM0.IsXMM() {
		t.Error("xmm/ymm ranges overlap")
	}
	if !YMM0.IsYMM() || !YMM31.IsYMM() {
		t.Error("ymm range boundaries misclassified")
	}
	if !ZMM0.IsZMM() || !ZMM31.IsZMM() {
		t.Error("zmm range boundaries misclassified")
	}
	if !K0.IsMask() || !K7.IsMask() {
		t.Error("k range boundaries misclassified")
	}
	if RegNone.IsXMM() || RegNone.IsYMM() || RegNone.IsZMM() || RegNone.IsMask() {
		t.Error("RegNone should not be in any class")
	}
}

func TestVectorIndex(t *testing.T) {
	tests := []struct {
		reg  Reg
		want int
	}{
		{XMM0, 0},
		{XMM15, 15},
		{XMM16, 16},
		{YMM20, 20},
		{ZMM31, 31},
		{K3, -1},
		{RegNone, -1},
	}

	for _, tt := range tests {
		if got := tt.reg.VectorIndex(); got != tt.want {
			t.Errorf("%s: vector index mismatch: got %d, want %d", tt.reg, got, tt.want)
		}
	}
}

func TestIsHighVector(t *testing.T) {
	tests := []struct {
		reg  Reg
		want bool
	}{
		{XMM0, false},
		{XMM15, false},
		{XMM16, true},
		{XMM31, true},
		{YMM15, false},
		{YMM16, true},
		{ZMM20, false}, // zmm 不属于高位判断的范围
		{K1, false},
	}

	for _, tt := range tests {
		if got := tt.reg.IsHighVector(); got != tt.want {
			t.Errorf("%s: IsHighVector mismatch: got %v, want %v", tt.reg, got, tt.want)
		}
	}
}

func TestRegisterNames(t *testing.T) {
	tests := []struct {
		reg  Reg
		want string
	}{
		{XMM0, "xmm0"},
		{XMM20, "xmm20"},
		{YMM7, "ymm7"},
		{ZMM31, "zmm31"},
		{K5, "k5"},
		{RegNone, "none"},
	}

	for _, tt := range tests {
		if got := tt.reg.String(); got != tt.want {
			t.Errorf("register name mismatch: got %q, want %q", got, tt.want)
		}
	}
}
