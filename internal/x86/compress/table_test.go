package compress

import (
	"testing"

	"github.com/limingzhe/orca/internal/x86"
)

func TestLookupVex(t *testing.T) {
	tests := []struct {
		op    x86.Opcode
		width x86.WidthClass
		want  x86.Opcode
		ok    bool
	}{
		{x86.VADDPSZ128rr, x86.Width128, x86.VADDPSrr, true},
		{x86.VMOVDQA64Z128rr, x86.Width128, x86.VMOVDQArr, true},
		{x86.VRNDSCALESSZr, x86.Width128, x86.VROUNDSSri, true},
		{x86.VADDPSZ256rr, x86.Width256, x86.VADDPSYrr, true},
		{x86.VSHUFI64X2Z256rri, x86.Width256, x86.VPERM2I128rri, true},
		// 512 位操作码不在任何分区
		{x86.VADDPSZrr, x86.Width128, x86.OpInvalid, false},
		{x86.VADDPSZrr, x86.Width256, x86.OpInvalid, false},
		// 掩码形式不在表里
		{x86.VADDPSZ128rrk, x86.Width128, x86.OpInvalid, false},
	}

	for _, tt := range tests {
		got, ok := lookupVex(tt.op, tt.width)
		if ok != tt.ok || got != tt.want {
			t.Errorf("lookupVex(%s, %s): got (%s, %v), want (%s, %v)",
				tt.op, tt.width, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTablePartitionsAreDisjoint(t *testing.T) {
	// 128 分区的未命中不允许由 256 分区兜底，反之亦然
	if _, ok := lookupVex(x86.VADDPSZ128rr, x86.Width256); ok {
		t.Error("128-bit opcode resolved through the 256 partition")
	}
	if _, ok := lookupVex(x86.VADDPSZ256rr, x86.Width128); ok {
		t.Error("256-bit opcode resolved through the 128 partition")
	}
	// 512 或非法宽度永远查不到
	if _, ok := lookupVex(x86.VADDPSZ128rr, x86.Width512); ok {
		t.Error("lookup with width 512 should always miss")
	}
	if _, ok := lookupVex(x86.VADDPSZ128rr, x86.WidthInvalid); ok {
		t.Error("lookup with invalid width should always miss")
	}
}

func TestTableEntriesInvariant(t *testing.T) {
	// 每个条目的 EVEX 操作码必须是无掩码无广播的 128/256 位 EVEX 指令
	for _, width := range []x86.WidthClass{x86.Width128, x86.Width256} {
		for _, e := range Entries(width) {
			d, ok := x86.LookupDescriptor(e.Evex)
			if !ok {
				t.Errorf("table entry %s has no descriptor", e.Evex)
				continue
			}
			if d.EncodingClass() != x86.EncodingEVEX {
				t.Errorf("table entry %s is not evex encoded", e.Evex)
			}
			if d.HasMask() || d.HasBroadcast() {
				t.Errorf("table entry %s carries mask or broadcast", e.Evex)
			}
			if got := d.WidthClass(); got != width {
				t.Errorf("table entry %s in the %s partition has width %s", e.Evex, width, got)
			}

			// VEX 侧编码类别也要对
			vd, ok := x86.LookupDescriptor(e.Vex)
			if !ok {
				t.Errorf("vex opcode %s has no descriptor", e.Vex)
				continue
			}
			if vd.EncodingClass() != x86.EncodingVEX {
				t.Errorf("table target %s is not vex encoded", e.Vex)
			}
		}
	}
}

func TestVexOpcodesAbsentFromTables(t *testing.T) {
	// 压缩结果不能再次命中表，保证 Pass 幂等
	for _, width := range []x86.WidthClass{x86.Width128, x86.Width256} {
		for _, e := range Entries(width) {
			if _, ok := lookupVex(e.Vex, x86.Width128); ok {
				t.Errorf("vex opcode %s appears as a key in the 128 partition", e.Vex)
			}
			if _, ok := lookupVex(e.Vex, x86.Width256); ok {
				t.Errorf("vex opcode %s appears as a key in the 256 partition", e.Vex)
			}
		}
	}
}
