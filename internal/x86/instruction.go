package x86

import (
	"fmt"
	"strings"
)

// ============================================================================
// 操作数定义
// ============================================================================

// OperandKind 操作数类别
type OperandKind int

const (
	OperandReg OperandKind = iota // 寄存器
	OperandImm                    // 立即数
)

// Operand 指令操作数 (寄存器或立即数的带标签联合)
type Operand struct {
	Kind OperandKind
	Reg  Reg   // Kind == OperandReg 时有效
	Imm  int64 // Kind == OperandImm 时有效
}

// RegOperand 构造寄存器操作数
func RegOperand(r Reg) Operand {
	return Operand{Kind: OperandReg, Reg: r}
}

// ImmOperand 构造立即数操作数
func ImmOperand(v int64) Operand {
	return Operand{Kind: OperandImm, Imm: v}
}

// IsReg 是否为寄存器操作数
func (o Operand) IsReg() bool {
	return o.Kind == OperandReg
}

// IsImm 是否为立即数操作数
func (o Operand) IsImm() bool {
	return o.Kind == OperandImm
}

func (o Operand) String() string {
	if o.IsReg() {
		return o.Reg.String()
	}
	return fmt.Sprintf("%d", o.Imm)
}

// ============================================================================
// 机器指令
// ============================================================================

// 打印标志 (只影响文本输出，不影响语义)
const (
	// PrintFlagCompressed 指令经过 EVEX→VEX 压缩
	PrintFlagCompressed uint8 = 1 << 0
)

// Instruction 寄存器分配之后的机器指令
// 由所属 Function 独占持有，优化 Pass 原地修改
type Instruction struct {
	Op         Opcode
	Operands   []Operand
	printFlags uint8
}

// NewInstruction 构造机器指令
func NewInstruction(op Opcode, operands ...Operand) *Instruction {
	return &Instruction{Op: op, Operands: operands}
}

// NumOperands 显式操作数个数
func (mi *Instruction) NumOperands() int {
	return len(mi.Operands)
}

// Operand 返回第 i 个操作数
func (mi *Instruction) Operand(i int) *Operand {
	return &mi.Operands[i]
}

// LastOperand 返回最后一个显式操作数 (立即数形式的指令立即数在末尾)
func (mi *Instruction) LastOperand() *Operand {
	return &mi.Operands[len(mi.Operands)-1]
}

// SetPrintFlag 设置打印标志
func (mi *Instruction) SetPrintFlag(flag uint8) {
	mi.printFlags |= flag
}

// HasPrintFlag 检查打印标志
func (mi *Instruction) HasPrintFlag(flag uint8) bool {
	return mi.printFlags&flag != 0
}

// Clone 深拷贝指令
func (mi *Instruction) Clone() *Instruction {
	ops := make([]Operand, len(mi.Operands))
	copy(ops, mi.Operands)
	return &Instruction{Op: mi.Op, Operands: ops, printFlags: mi.printFlags}
}

func (mi *Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(mi.Op.String())
	for i, o := range mi.Operands {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(o.String())
	}
	if mi.HasPrintFlag(PrintFlagCompressed) {
		sb.WriteString("    ; evex-to-vex")
	}
	return sb.String()
}

// ============================================================================
// 基本块与函数
// ============================================================================

// Block 基本块
type Block struct {
	Label string
	Insts []*Instruction
}

// Add 追加指令
func (bb *Block) Add(mi *Instruction) {
	bb.Insts = append(bb.Insts, mi)
}

// Function 编译单元 (一个函数的机器码)
type Function struct {
	Name   string
	Blocks []*Block
}

// NewFunction 创建空函数
func NewFunction(name string) *Function {
	return &Function{Name: name}
}

// NewBlock 创建并追加基本块
func (fn *Function) NewBlock(label string) *Block {
	bb := &Block{Label: label}
	fn.Blocks = append(fn.Blocks, bb)
	return bb
}

// NumInsts 指令总数
func (fn *Function) NumInsts() int {
	n := 0
	for _, bb := range fn.Blocks {
		n += len(bb.Insts)
	}
	return n
}

// Clone 深拷贝函数 (测试与对比用)
func (fn *Function) Clone() *Function {
	out := NewFunction(fn.Name)
	for _, bb := range fn.Blocks {
		nb := out.NewBlock(bb.Label)
		for _, mi := range bb.Insts {
			nb.Add(mi.Clone())
		}
	}
	return out
}

func (fn *Function) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", fn.Name)
	for _, bb := range fn.Blocks {
		if bb.Label != "" {
			fmt.Fprintf(&sb, "%s:\n", bb.Label)
		}
		for _, mi := range bb.Insts {
			fmt.Fprintf(&sb, "    %s\n", mi)
		}
	}
	return sb.String()
}
