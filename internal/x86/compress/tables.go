package compress

import "github.com/limingzhe/orca/internal/x86"

// ============================================================================
// EVEX→VEX 压缩表 (由编码表生成)
// ============================================================================
// 本文件内容由指令编码表导出，手工修改会在下次生成时被覆盖。
// 两个分区按向量宽度严格分开: VEX 用单独的 L 位隐式编码宽度，
// 128 分区的未命中不允许落到 256 分区。

// Entry 压缩表条目: EVEX 操作码与等价的 VEX 操作码
type Entry struct {
	Evex x86.Opcode
	Vex  x86.Opcode
}

// 128 位分区 (含标量形式)
var evexToVex128Entries = []Entry{
	{x86.VADDPDZ128rr, x86.VADDPDrr},
	{x86.VADDPSZ128rr, x86.VADDPSrr},
	{x86.VSUBPDZ128rr, x86.VSUBPDrr},
	{x86.VSUBPSZ128rr, x86.VSUBPSrr},
	{x86.VMULPDZ128rr, x86.VMULPDrr},
	{x86.VMULPSZ128rr, x86.VMULPSrr},
	{x86.VDIVPDZ128rr, x86.VDIVPDrr},
	{x86.VDIVPSZ128rr, x86.VDIVPSrr},
	{x86.VPADDDZ128rr, x86.VPADDDrr},
	{x86.VPADDQZ128rr, x86.VPADDQrr},
	{x86.VPANDQZ128rr, x86.VPANDrr},
	{x86.VPORQZ128rr, x86.VPORrr},
	{x86.VPXORQZ128rr, x86.VPXORrr},
	{x86.VMOVAPDZ128rr, x86.VMOVAPDrr},
	{x86.VMOVAPSZ128rr, x86.VMOVAPSrr},
	{x86.VMOVUPSZ128rr, x86.VMOVUPSrr},
	{x86.VMOVDQA64Z128rr, x86.VMOVDQArr},
	{x86.VALIGNDZ128rri, x86.VPALIGNRrri},
	{x86.VALIGNQZ128rri, x86.VPALIGNRrri},
	{x86.VRNDSCALEPDZ128rri, x86.VROUNDPDri},
	{x86.VRNDSCALEPSZ128rri, x86.VROUNDPSri},
	{x86.VRNDSCALESDZr, x86.VROUNDSDri},
	{x86.VRNDSCALESSZr, x86.VROUNDSSri},
}

// 256 位分区
var evexToVex256Entries = []Entry{
	{x86.VADDPDZ256rr, x86.VADDPDYrr},
	{x86.VADDPSZ256rr, x86.VADDPSYrr},
	{x86.VSUBPDZ256rr, x86.VSUBPDYrr},
	{x86.VSUBPSZ256rr, x86.VSUBPSYrr},
	{x86.VMULPDZ256rr, x86.VMULPDYrr},
	{x86.VMULPSZ256rr, x86.VMULPSYrr},
	{x86.VDIVPSZ256rr, x86.VDIVPSYrr},
	{x86.VPADDDZ256rr, x86.VPADDDYrr},
	{x86.VPADDQZ256rr, x86.VPADDQYrr},
	{x86.VMOVAPSZ256rr, x86.VMOVAPSYrr},
	{x86.VMOVUPSZ256rr, x86.VMOVUPSYrr},
	{x86.VMOVDQA64Z256rr, x86.VMOVDQAYrr},
	{x86.VSHUFF32X4Z256rri, x86.VPERM2F128rri},
	{x86.VSHUFF64X2Z256rri, x86.VPERM2F128rri},
	{x86.VSHUFI32X4Z256rri, x86.VPERM2I128rri},
	{x86.VSHUFI64X2Z256rri, x86.VPERM2I128rri},
	{x86.VRNDSCALEPDZ256rri, x86.VROUNDPDYri},
	{x86.VRNDSCALEPSZ256rri, x86.VROUNDPSYri},
}
