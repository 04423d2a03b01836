package compress

import (
	"errors"
	"testing"

	"github.com/limingzhe/orca/internal/x86"
)

func TestUsesExtendedRegister(t *testing.T) {
	tests := []struct {
		name string
		mi   *x86.Instruction
		want bool
	}{
		{
			"low xmm only",
			x86.NewInstruction(x86.VADDPSZ128rr,
				x86.RegOperand(x86.XMM0), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM15)),
			false,
		},
		{
			"high xmm destination",
			x86.NewInstruction(x86.VADDPSZ128rr,
				x86.RegOperand(x86.XMM20), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2)),
			true,
		},
		{
			"high ymm in the middle",
			x86.NewInstruction(x86.VADDPSZ256rr,
				x86.RegOperand(x86.YMM0), x86.RegOperand(x86.YMM16), x86.RegOperand(x86.YMM2)),
			true,
		},
		{
			"immediate ignored",
			x86.NewInstruction(x86.VALIGNDZ128rri,
				x86.RegOperand(x86.XMM0), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2),
				x86.ImmOperand(31)),
			false,
		},
	}

	for _, tt := range tests {
		got, err := usesExtendedRegister(tt.mi)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestZMMOperandIsAFault(t *testing.T) {
	// ZMM 操作数不是普通的不合格，而是编码表缺陷
	mi := x86.NewInstruction(x86.VADDPSZ128rr,
		x86.RegOperand(x86.ZMM0), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2))

	_, err := usesExtendedRegister(mi)
	if !errors.Is(err, ErrZMMOperand) {
		t.Errorf("got error %v, want ErrZMMOperand", err)
	}
}
