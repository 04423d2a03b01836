package x86

import "fmt"

// ============================================================================
// 操作码定义
// ============================================================================

// Opcode 机器指令操作码 (驻留整数 id)
type Opcode uint16

// OpInvalid 无效操作码
const OpInvalid Opcode = 0

// 传统 SSE 编码
const (
	ADDPSrr Opcode = iota + 1
	MOVAPSrr
)

// VEX 编码 (128 位)
const (
	VADDPDrr Opcode = iota + MOVAPSrr + 1
	VADDPSrr
	VSUBPDrr
	VSUBPSrr
	VMULPDrr
	VMULPSrr
	VDIVPDrr
	VDIVPSrr
	VPADDDrr
	VPADDQrr
	VPANDrr
	VPORrr
	VPXORrr
	VMOVAPDrr
	VMOVAPSrr
	VMOVUPSrr
	VMOVDQArr
	VPALIGNRrri
	VROUNDPDri
	VROUNDPSri
	VROUNDSDri
	VROUNDSSri
)

// VEX 编码 (256 位)
const (
	VADDPDYrr Opcode = iota + VROUNDSSri + 1
	VADDPSYrr
	VSUBPDYrr
	VSUBPSYrr
	VMULPDYrr
	VMULPSYrr
	VDIVPSYrr
	VPADDDYrr
	VPADDQYrr
	VMOVAPSYrr
	VMOVUPSYrr
	VMOVDQAYrr
	VPERM2F128rri
	VPERM2I128rri
	VROUNDPDYri
	VROUNDPSYri
)

// EVEX 编码 (128 位, 含标量)
const (
	VADDPDZ128rr Opcode = iota + VROUNDPSYri + 1
	VADDPSZ128rr
	VSUBPDZ128rr
	VSUBPSZ128rr
	VMULPDZ128rr
	VMULPSZ128rr
	VDIVPDZ128rr
	VDIVPSZ128rr
	VPADDDZ128rr
	VPADDQZ128rr
	VPANDQZ128rr
	VPORQZ128rr
	VPXORQZ128rr
	VMOVAPDZ128rr
	VMOVAPSZ128rr
	VMOVUPSZ128rr
	VMOVDQA64Z128rr
	VALIGNDZ128rri
	VALIGNQZ128rri
	VRNDSCALEPDZ128rri
	VRNDSCALEPSZ128rri
	VRNDSCALESDZr
	VRNDSCALESSZr
)

// EVEX 编码 (128 位, 带掩码/广播)
const (
	VADDPSZ128rrk Opcode = iota + VRNDSCALESSZr + 1
	VPADDDZ128rrk
	VMOVAPSZ128rrk
	VADDPSZ128rmb
)

// EVEX 编码 (256 位)
const (
	VADDPDZ256rr Opcode = iota + VADDPSZ128rmb + 1
	VADDPSZ256rr
	VSUBPDZ256rr
	VSUBPSZ256rr
	VMULPDZ256rr
	VMULPSZ256rr
	VDIVPSZ256rr
	VPADDDZ256rr
	VPADDQZ256rr
	VMOVAPSZ256rr
	VMOVUPSZ256rr
	VMOVDQA64Z256rr
	VSHUFF32X4Z256rri
	VSHUFF64X2Z256rri
	VSHUFI32X4Z256rri
	VSHUFI64X2Z256rri
	VRNDSCALEPDZ256rri
	VRNDSCALEPSZ256rri
	VMULPSZ256rmb
)

// EVEX 编码 (512 位)
const (
	VADDPDZrr Opcode = iota + VMULPSZ256rmb + 1
	VADDPSZrr
	VPADDDZrr
	VMOVAPSZrr
)

// ============================================================================
// 操作码名称
// ============================================================================

var opcodeNames = map[Opcode]string{
	ADDPSrr:  "ADDPSrr",
	MOVAPSrr: "MOVAPSrr",

	VADDPDrr:    "VADDPDrr",
	VADDPSrr:    "VADDPSrr",
	VSUBPDrr:    "VSUBPDrr",
	VSUBPSrr:    "VSUBPSrr",
	VMULPDrr:    "VMULPDrr",
	VMULPSrr:    "VMULPSrr",
	VDIVPDrr:    "VDIVPDrr",
	VDIVPSrr:    "VDIVPSrr",
	VPADDDrr:    "VPADDDrr",
	VPADDQrr:    "VPADDQrr",
	VPANDrr:     "VPANDrr",
	VPORrr:      "VPORrr",
	VPXORrr:     "VPXORrr",
	VMOVAPDrr:   "VMOVAPDrr",
	VMOVAPSrr:   "VMOVAPSrr",
	VMOVUPSrr:   "VMOVUPSrr",
	VMOVDQArr:   "VMOVDQArr",
	VPALIGNRrri: "VPALIGNRrri",
	VROUNDPDri:  "VROUNDPDri",
	VROUNDPSri:  "VROUNDPSri",
	VROUNDSDri:  "VROUNDSDri",
	VROUNDSSri:  "VROUNDSSri",

	VADDPDYrr:     "VADDPDYrr",
	VADDPSYrr:     "VADDPSYrr",
	VSUBPDYrr:     "VSUBPDYrr",
	VSUBPSYrr:     "VSUBPSYrr",
	VMULPDYrr:     "VMULPDYrr",
	VMULPSYrr:     "VMULPSYrr",
	VDIVPSYrr:     "VDIVPSYrr",
	VPADDDYrr:     "VPADDDYrr",
	VPADDQYrr:     "VPADDQYrr",
	VMOVAPSYrr:    "VMOVAPSYrr",
	VMOVUPSYrr:    "VMOVUPSYrr",
	VMOVDQAYrr:    "VMOVDQAYrr",
	VPERM2F128rri: "VPERM2F128rri",
	VPERM2I128rri: "VPERM2I128rri",
	VROUNDPDYri:   "VROUNDPDYri",
	VROUNDPSYri:   "VROUNDPSYri",

	VADDPDZ128rr:       "VADDPDZ128rr",
	VADDPSZ128rr:       "VADDPSZ128rr",
	VSUBPDZ128rr:       "VSUBPDZ128rr",
	VSUBPSZ128rr:       "VSUBPSZ128rr",
	VMULPDZ128rr:       "VMULPDZ128rr",
	VMULPSZ128rr:       "VMULPSZ128rr",
	VDIVPDZ128rr:       "VDIVPDZ128rr",
	VDIVPSZ128rr:       "VDIVPSZ128rr",
	VPADDDZ128rr:       "VPADDDZ128rr",
	VPADDQZ128rr:       "VPADDQZ128rr",
	VPANDQZ128rr:       "VPANDQZ128rr",
	VPORQZ128rr:        "VPORQZ128rr",
	VPXORQZ128rr:       "VPXORQZ128rr",
	VMOVAPDZ128rr:      "VMOVAPDZ128rr",
	VMOVAPSZ128rr:      "VMOVAPSZ128rr",
	VMOVUPSZ128rr:      "VMOVUPSZ128rr",
	VMOVDQA64Z128rr:    "VMOVDQA64Z128rr",
	VALIGNDZ128rri:     "VALIGNDZ128rri",
	VALIGNQZ128rri:     "VALIGNQZ128rri",
	VRNDSCALEPDZ128rri: "VRNDSCALEPDZ128rri",
	VRNDSCALEPSZ128rri: "VRNDSCALEPSZ128rri",
	VRNDSCALESDZr:      "VRNDSCALESDZr",
	VRNDSCALESSZr:      "VRNDSCALESSZr",

	VADDPSZ128rrk:  "VADDPSZ128rrk",
	VPADDDZ128rrk:  "VPADDDZ128rrk",
	VMOVAPSZ128rrk: "VMOVAPSZ128rrk",
	VADDPSZ128rmb:  "VADDPSZ128rmb",

	VADDPDZ256rr:       "VADDPDZ256rr",
	VADDPSZ256rr:       "VADDPSZ256rr",
	VSUBPDZ256rr:       "VSUBPDZ256rr",
	VSUBPSZ256rr:       "VSUBPSZ256rr",
	VMULPDZ256rr:       "VMULPDZ256rr",
	VMULPSZ256rr:       "VMULPSZ256rr",
	VDIVPSZ256rr:       "VDIVPSZ256rr",
	VPADDDZ256rr:       "VPADDDZ256rr",
	VPADDQZ256rr:       "VPADDQZ256rr",
	VMOVAPSZ256rr:      "VMOVAPSZ256rr",
	VMOVUPSZ256rr:      "VMOVUPSZ256rr",
	VMOVDQA64Z256rr:    "VMOVDQA64Z256rr",
	VSHUFF32X4Z256rri:  "VSHUFF32X4Z256rri",
	VSHUFF64X2Z256rri:  "VSHUFF64X2Z256rri",
	VSHUFI32X4Z256rri:  "VSHUFI32X4Z256rri",
	VSHUFI64X2Z256rri:  "VSHUFI64X2Z256rri",
	VRNDSCALEPDZ256rri: "VRNDSCALEPDZ256rri",
	VRNDSCALEPSZ256rri: "VRNDSCALEPSZ256rri",
	VMULPSZ256rmb:      "VMULPSZ256rmb",

	VADDPDZrr:  "VADDPDZrr",
	VADDPSZrr:  "VADDPSZrr",
	VPADDDZrr:  "VPADDDZrr",
	VMOVAPSZrr: "VMOVAPSZrr",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", uint16(op))
}
