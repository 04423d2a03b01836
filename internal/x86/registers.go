package x86

import "fmt"

// ============================================================================
// 向量寄存器定义
// ============================================================================

// Reg 物理寄存器编号
// 寄存器文件在分配阶段就已确定，本层只做只读的范围判断
type Reg uint16

// RegNone 无效寄存器
const RegNone Reg = 0

// XMM 寄存器 (128 位)
const (
	XMM0 Reg = iota + 1
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	XMM16
	XMM17
	XMM18
	XMM19
	XMM20
	XMM21
	XMM22
	XMM23
	XMM24
	XMM25
	XMM26
	XMM27
	XMM28
	XMM29
	XMM30
	XMM31
)

// YMM 寄存器 (256 位)
const (
	YMM0 Reg = iota + XMM31 + 1
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
	YMM16
	YMM17
	YMM18
	YMM19
	YMM20
	YMM21
	YMM22
	YMM23
	YMM24
	YMM25
	YMM26
	YMM27
	YMM28
	YMM29
	YMM30
	YMM31
)

// ZMM 寄存器 (512 位)
const (
	ZMM0 Reg = iota + YMM31 + 1
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
	ZMM16
	ZMM17
	ZMM18
	ZMM19
	ZMM20
	ZMM21
	ZMM22
	ZMM23
	ZMM24
	ZMM25
	ZMM26
	ZMM27
	ZMM28
	ZMM29
	ZMM30
	ZMM31
)

// K 掩码寄存器 (AVX-512)
const (
	K0 Reg = iota + ZMM31 + 1
	K1
	K2
	K3
	K4
	K5
	K6
	K7
)

// ============================================================================
// 范围判断
// ============================================================================

// IsXMM 检查是否为 XMM 寄存器
func (r Reg) IsXMM() bool {
	return r >= XMM0 && r <= XMM31
}

// IsYMM 检查是否为 YMM 寄存器
func (r Reg) IsYMM() bool {
	return r >= YMM0 && r <= YMM31
}

// IsZMM 检查是否为 ZMM 寄存器
func (r Reg) IsZMM() bool {
	return r >= ZMM0 && r <= ZMM31
}

// IsMask 检查是否为 K 掩码寄存器
func (r Reg) IsMask() bool {
	return r >= K0 && r <= K7
}

// VectorIndex 返回向量寄存器在其类内的编号 (0-31)
// 非向量寄存器返回 -1
func (r Reg) VectorIndex() int {
	switch {
	case r.IsXMM():
		return int(r - XMM0)
	case r.IsYMM():
		return int(r - YMM0)
	case r.IsZMM():
		return int(r - ZMM0)
	}
	return -1
}

// IsHighVector 检查是否为高位向量寄存器 (编号 16-31)
// VEX 前缀的寄存器选择域只有 4 位，编码不了这部分寄存器
func (r Reg) IsHighVector() bool {
	if r.IsXMM() || r.IsYMM() {
		return r.VectorIndex() >= 16
	}
	return false
}

func (r Reg) String() string {
	switch {
	case r == RegNone:
		return "none"
	case r.IsXMM():
		return fmt.Sprintf("xmm%d", r.VectorIndex())
	case r.IsYMM():
		return fmt.Sprintf("ymm%d", r.VectorIndex())
	case r.IsZMM():
		return fmt.Sprintf("zmm%d", r.VectorIndex())
	case r.IsMask():
		return fmt.Sprintf("k%d", int(r-K0))
	}
	return "unknown"
}
