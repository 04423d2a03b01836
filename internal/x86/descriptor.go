package x86

// ============================================================================
// 指令编码描述符
// ============================================================================

// DescFlags 描述符标志位
// 布局参考硬件编码表: 低 2 位是编码类别，其余是前缀特性位
type DescFlags uint32

const (
	// EncodingMask 编码类别掩码
	EncodingMask DescFlags = 0x3

	// EncLegacy 传统 SSE 编码
	EncLegacy DescFlags = 0x0
	// EncVEX VEX 前缀编码
	EncVEX DescFlags = 0x1
	// EncEVEX EVEX 前缀编码
	EncEVEX DescFlags = 0x2

	// FlagVEX_L VEX.L 位 (256 位向量)
	FlagVEX_L DescFlags = 1 << 2
	// FlagEVEX_K EVEX 掩码位 (带 k 寄存器写掩码)
	FlagEVEX_K DescFlags = 1 << 3
	// FlagEVEX_B EVEX 广播/舍入控制位
	FlagEVEX_B DescFlags = 1 << 4
	// FlagEVEX_L2 EVEX.L' 位 (512 位向量)
	FlagEVEX_L2 DescFlags = 1 << 5
)

// EncodingClass 指令编码类别
type EncodingClass int

const (
	EncodingLegacy EncodingClass = iota // 传统编码
	EncodingVEX                         // VEX 前缀 (短形式)
	EncodingEVEX                        // EVEX 前缀 (长形式)
)

func (c EncodingClass) String() string {
	switch c {
	case EncodingLegacy:
		return "legacy"
	case EncodingVEX:
		return "vex"
	case EncodingEVEX:
		return "evex"
	}
	return "unknown"
}

// WidthClass 向量宽度类别
// 由 EVEX.L' 和 VEX.L 两个独立的位组合推导
type WidthClass int

const (
	Width128 WidthClass = iota // L'=0 L=0
	Width256                   // L'=0 L=1
	Width512                   // L'=1 L=0
	WidthInvalid               // L'=1 L=1 (编码表不应产生)
)

func (w WidthClass) String() string {
	switch w {
	case Width128:
		return "128"
	case Width256:
		return "256"
	case Width512:
		return "512"
	}
	return "invalid"
}

// Descriptor 操作码的静态编码元数据
// 表构建时定义一次，之后只读
type Descriptor struct {
	Flags DescFlags
}

// EncodingClass 返回编码类别
func (d Descriptor) EncodingClass() EncodingClass {
	switch d.Flags & EncodingMask {
	case EncVEX:
		return EncodingVEX
	case EncEVEX:
		return EncodingEVEX
	}
	return EncodingLegacy
}

// WidthClass 返回向量宽度类别
func (d Descriptor) WidthClass() WidthClass {
	l2 := d.Flags&FlagEVEX_L2 != 0
	l := d.Flags&FlagVEX_L != 0
	switch {
	case !l2 && !l:
		return Width128
	case !l2 && l:
		return Width256
	case l2 && !l:
		return Width512
	}
	// 两个宽度位同时置位不对应任何合法宽度
	return WidthInvalid
}

// HasMask 是否带写掩码
func (d Descriptor) HasMask() bool {
	return d.Flags&FlagEVEX_K != 0
}

// HasBroadcast 是否带广播
func (d Descriptor) HasBroadcast() bool {
	return d.Flags&FlagEVEX_B != 0
}

// ============================================================================
// 描述符表
// ============================================================================

var descriptors = map[Opcode]Descriptor{
	// 传统 SSE
	ADDPSrr:  {EncLegacy},
	MOVAPSrr: {EncLegacy},

	// VEX 128
	VADDPDrr:    {EncVEX},
	VADDPSrr:    {EncVEX},
	VSUBPDrr:    {EncVEX},
	VSUBPSrr:    {EncVEX},
	VMULPDrr:    {EncVEX},
	VMULPSrr:    {EncVEX},
	VDIVPDrr:    {EncVEX},
	VDIVPSrr:    {EncVEX},
	VPADDDrr:    {EncVEX},
	VPADDQrr:    {EncVEX},
	VPANDrr:     {EncVEX},
	VPORrr:      {EncVEX},
	VPXORrr:     {EncVEX},
	VMOVAPDrr:   {EncVEX},
	VMOVAPSrr:   {EncVEX},
	VMOVUPSrr:   {EncVEX},
	VMOVDQArr:   {EncVEX},
	VPALIGNRrri: {EncVEX},
	VROUNDPDri:  {EncVEX},
	VROUNDPSri:  {EncVEX},
	VROUNDSDri:  {EncVEX},
	VROUNDSSri:  {EncVEX},

	// VEX 256
	VADDPDYrr:     {EncVEX | FlagVEX_L},
	VADDPSYrr:     {EncVEX | FlagVEX_L},
	VSUBPDYrr:     {EncVEX | FlagVEX_L},
	VSUBPSYrr:     {EncVEX | FlagVEX_L},
	VMULPDYrr:     {EncVEX | FlagVEX_L},
	VMULPSYrr:     {EncVEX | FlagVEX_L},
	VDIVPSYrr:     {EncVEX | FlagVEX_L},
	VPADDDYrr:     {EncVEX | FlagVEX_L},
	VPADDQYrr:     {EncVEX | FlagVEX_L},
	VMOVAPSYrr:    {EncVEX | FlagVEX_L},
	VMOVUPSYrr:    {EncVEX | FlagVEX_L},
	VMOVDQAYrr:    {EncVEX | FlagVEX_L},
	VPERM2F128rri: {EncVEX | FlagVEX_L},
	VPERM2I128rri: {EncVEX | FlagVEX_L},
	VROUNDPDYri:   {EncVEX | FlagVEX_L},
	VROUNDPSYri:   {EncVEX | FlagVEX_L},

	// EVEX 128 (含标量形式)
	VADDPDZ128rr:       {EncEVEX},
	VADDPSZ128rr:       {EncEVEX},
	VSUBPDZ128rr:       {EncEVEX},
	VSUBPSZ128rr:       {EncEVEX},
	VMULPDZ128rr:       {EncEVEX},
	VMULPSZ128rr:       {EncEVEX},
	VDIVPDZ128rr:       {EncEVEX},
	VDIVPSZ128rr:       {EncEVEX},
	VPADDDZ128rr:       {EncEVEX},
	VPADDQZ128rr:       {EncEVEX},
	VPANDQZ128rr:       {EncEVEX},
	VPORQZ128rr:        {EncEVEX},
	VPXORQZ128rr:       {EncEVEX},
	VMOVAPDZ128rr:      {EncEVEX},
	VMOVAPSZ128rr:      {EncEVEX},
	VMOVUPSZ128rr:      {EncEVEX},
	VMOVDQA64Z128rr:    {EncEVEX},
	VALIGNDZ128rri:     {EncEVEX},
	VALIGNQZ128rri:     {EncEVEX},
	VRNDSCALEPDZ128rri: {EncEVEX},
	VRNDSCALEPSZ128rri: {EncEVEX},
	VRNDSCALESDZr:      {EncEVEX},
	VRNDSCALESSZr:      {EncEVEX},

	// EVEX 128 带掩码/广播
	VADDPSZ128rrk:  {EncEVEX | FlagEVEX_K},
	VPADDDZ128rrk:  {EncEVEX | FlagEVEX_K},
	VMOVAPSZ128rrk: {EncEVEX | FlagEVEX_K},
	VADDPSZ128rmb:  {EncEVEX | FlagEVEX_B},

	// EVEX 256
	VADDPDZ256rr:       {EncEVEX | FlagVEX_L},
	VADDPSZ256rr:       {EncEVEX | FlagVEX_L},
	VSUBPDZ256rr:       {EncEVEX | FlagVEX_L},
	VSUBPSZ256rr:       {EncEVEX | FlagVEX_L},
	VMULPDZ256rr:       {EncEVEX | FlagVEX_L},
	VMULPSZ256rr:       {EncEVEX | FlagVEX_L},
	VDIVPSZ256rr:       {EncEVEX | FlagVEX_L},
	VPADDDZ256rr:       {EncEVEX | FlagVEX_L},
	VPADDQZ256rr:       {EncEVEX | FlagVEX_L},
	VMOVAPSZ256rr:      {EncEVEX | FlagVEX_L},
	VMOVUPSZ256rr:      {EncEVEX | FlagVEX_L},
	VMOVDQA64Z256rr:    {EncEVEX | FlagVEX_L},
	VSHUFF32X4Z256rri:  {EncEVEX | FlagVEX_L},
	VSHUFF64X2Z256rri:  {EncEVEX | FlagVEX_L},
	VSHUFI32X4Z256rri:  {EncEVEX | FlagVEX_L},
	VSHUFI64X2Z256rri:  {EncEVEX | FlagVEX_L},
	VRNDSCALEPDZ256rri: {EncEVEX | FlagVEX_L},
	VRNDSCALEPSZ256rri: {EncEVEX | FlagVEX_L},
	VMULPSZ256rmb:      {EncEVEX | FlagVEX_L | FlagEVEX_B},

	// EVEX 512
	VADDPDZrr:  {EncEVEX | FlagEVEX_L2},
	VADDPSZrr:  {EncEVEX | FlagEVEX_L2},
	VPADDDZrr:  {EncEVEX | FlagEVEX_L2},
	VMOVAPSZrr: {EncEVEX | FlagEVEX_L2},
}

// LookupDescriptor 查找操作码的编码描述符
func LookupDescriptor(op Opcode) (Descriptor, bool) {
	d, ok := descriptors[op]
	return d, ok
}
