package compress

import (
	"errors"

	"github.com/limingzhe/orca/internal/x86"
)

// ============================================================================
// 寄存器约束检查
// ============================================================================

// ErrZMMOperand 内部一致性错误: 压缩表里出现了带 ZMM 操作数的指令。
// 512 位指令在资格检查阶段就该被排除，走到这里说明编码表生成有缺陷，
// 属于数据错误而不是输入程序的正常不合格。
var ErrZMMOperand = errors.New("zmm operand on an instruction listed in the evex-to-vex table")

// usesExtendedRegister 检查操作数里是否有 VEX 编码不了的高位寄存器
// (xmm16-xmm31 / ymm16-ymm31)。不修改指令。
func usesExtendedRegister(mi *x86.Instruction) (bool, error) {
	for i := 0; i < mi.NumOperands(); i++ {
		o := mi.Operand(i)
		if !o.IsReg() {
			continue
		}

		if o.Reg.IsZMM() {
			return false, ErrZMMOperand
		}

		if o.Reg.IsHighVector() {
			return true, nil
		}
	}
	return false, nil
}
