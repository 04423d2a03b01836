// Package compress 实现 EVEX→VEX 编码压缩 Pass
//
// 寄存器分配之后，带 EVEX 前缀的 AVX-512 指令如果存在等价的
// AVX/AVX2 操作码，且没有用到掩码、广播、512 位向量或编号 16 以上
// 的 xmm/ymm 寄存器，就可以改写为更短的 VEX 编码，通常省 2 字节。
// Pass 只替换操作码并在需要时原地调整立即数，不增删指令和操作数。
package compress

import "github.com/limingzhe/orca/internal/x86"

// ============================================================================
// 压缩表构建与查找
// ============================================================================

// 进程级只读状态: 包初始化时从生成的条目构建一次，之后只有并发读
var (
	evexToVex128 map[x86.Opcode]x86.Opcode
	evexToVex256 map[x86.Opcode]x86.Opcode
)

func init() {
	evexToVex128 = buildTable(evexToVex128Entries)
	evexToVex256 = buildTable(evexToVex256Entries)
}

func buildTable(entries []Entry) map[x86.Opcode]x86.Opcode {
	table := make(map[x86.Opcode]x86.Opcode, len(entries))
	for _, e := range entries {
		table[e.Evex] = e.Vex
	}
	return table
}

// lookupVex 在指定宽度的分区查找 VEX 操作码
// 分区之间互不兜底: 128 的未命中不会去查 256 表，反之亦然
func lookupVex(op x86.Opcode, width x86.WidthClass) (x86.Opcode, bool) {
	switch width {
	case x86.Width128:
		vex, ok := evexToVex128[op]
		return vex, ok
	case x86.Width256:
		vex, ok := evexToVex256[op]
		return vex, ok
	}
	return x86.OpInvalid, false
}

// Entries 返回指定宽度分区的生成条目 (调试工具用)
func Entries(width x86.WidthClass) []Entry {
	switch width {
	case x86.Width128:
		return evexToVex128Entries
	case x86.Width256:
		return evexToVex256Entries
	}
	return nil
}
