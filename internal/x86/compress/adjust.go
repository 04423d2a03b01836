package compress

import "github.com/limingzhe/orca/internal/x86"

// ============================================================================
// 立即数调整规则
// ============================================================================
// 少数操作码对在两种编码下立即数语义不完全一致，换操作码之前
// 需要改写或校验最后一个显式操作数 (立即数)。规则按操作码查表
// 分发，不在这个集合里的指令只做纯粹的操作码替换。

// adjustFunc 立即数调整函数
// 返回 false 表示该立即数在 VEX 形式下不等价，整条指令放弃压缩。
// 只有校验类规则会返回 false，且返回 false 时不产生任何修改。
type adjustFunc func(mi *x86.Instruction) bool

var adjusters = map[x86.Opcode]adjustFunc{
	// VALIGND/Q: EVEX 立即数按元素计数，VPALIGNR 按字节计数
	x86.VALIGNDZ128rri: scaleImm(4),
	x86.VALIGNQZ128rri: scaleImm(8),

	// VSHUF*: 2 位通道选择立即数重排到 VPERM2F128/VPERM2I128 的位布局
	x86.VSHUFF32X4Z256rri: remapLaneImm,
	x86.VSHUFF64X2Z256rri: remapLaneImm,
	x86.VSHUFI32X4Z256rri: remapLaneImm,
	x86.VSHUFI64X2Z256rri: remapLaneImm,

	// VRNDSCALE: VROUND 只解释低 4 位，高位有值则两种形式不等价
	x86.VRNDSCALEPDZ128rri: checkRoundImm,
	x86.VRNDSCALEPSZ128rri: checkRoundImm,
	x86.VRNDSCALEPDZ256rri: checkRoundImm,
	x86.VRNDSCALEPSZ256rri: checkRoundImm,
	x86.VRNDSCALESDZr:      checkRoundImm,
	x86.VRNDSCALESSZr:      checkRoundImm,
}

// applyAdjustments 执行该操作码注册的调整规则
func applyAdjustments(mi *x86.Instruction) bool {
	if adjust, ok := adjusters[mi.Op]; ok {
		return adjust(mi)
	}
	return true
}

// scaleImm 立即数乘以元素字节宽度 (对齐类指令)
func scaleImm(scale int64) adjustFunc {
	return func(mi *x86.Instruction) bool {
		imm := mi.LastOperand()
		imm.Imm *= scale
		return true
	}
}

// remapLaneImm 通道选择位重排 (2 源换排类指令)
// 置位 bit 5，bit 1 搬到 bit 4，bit 0 原样保留
func remapLaneImm(mi *x86.Instruction) bool {
	imm := mi.LastOperand()
	v := imm.Imm
	imm.Imm = 0x20 | ((v & 2) << 3) | (v & 1)
	return true
}

// checkRoundImm 校验舍入控制立即数只用到低 4 位
func checkRoundImm(mi *x86.Instruction) bool {
	v := mi.LastOperand().Imm
	return v&0xf == v
}
