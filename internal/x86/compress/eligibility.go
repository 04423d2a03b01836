package compress

import "github.com/limingzhe/orca/internal/x86"

// ============================================================================
// 结构性资格检查
// ============================================================================

// checkEligibility 根据编码描述符判断指令是否允许尝试压缩
// 只看静态元数据，不看具体表条目，不修改任何状态。
// 返回选中的表分区宽度与是否合格。
func checkEligibility(d x86.Descriptor) (x86.WidthClass, bool) {
	// 只处理 EVEX 编码的指令
	if d.EncodingClass() != x86.EncodingEVEX {
		return x86.WidthInvalid, false
	}

	// 掩码和广播信息在 VEX 编码里没有对应的域，
	// 压缩会静默丢失语义，必须拒绝
	if d.HasMask() || d.HasBroadcast() {
		return x86.WidthInvalid, false
	}

	switch d.WidthClass() {
	case x86.Width128:
		return x86.Width128, true
	case x86.Width256:
		return x86.Width256, true
	case x86.Width512:
		// VEX 没有 512 位的编码槽位
		return x86.WidthInvalid, false
	}

	// 两个宽度位同时置位: 不对应任何合法宽度，保守拒绝。
	// 显式分支，避免编码表生成缺陷被静默吞掉。
	return x86.WidthInvalid, false
}
