package compress

import (
	"go.uber.org/zap"

	"github.com/limingzhe/orca/internal/x86"
)

// ============================================================================
// EVEX→VEX 压缩 Pass
// ============================================================================

// PassName Pass 名称
const PassName = "evex-to-vex-compress"

// Target 目标特性查询接口
// 由 internal/target 的 Profile 实现，测试里可以换成桩
type Target interface {
	// HasAVX512 目标是否支持 EVEX 编码的指令集
	HasAVX512() bool
}

// Pass EVEX→VEX 压缩 Pass
// 单个 Pass 实例不支持并发 Run (内部累积统计)；
// 跨函数并行时每个 goroutine 各建一个实例即可，压缩表是共享只读的。
type Pass struct {
	target Target
	log    *zap.Logger
	report Report
}

// Option Pass 配置项
type Option func(*Pass)

// WithLogger 设置日志器 (默认不输出)
func WithLogger(log *zap.Logger) Option {
	return func(p *Pass) {
		p.log = log
	}
}

// New 创建压缩 Pass
func New(target Target, opts ...Option) *Pass {
	p := &Pass{
		target: target,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name 返回 Pass 名称
func (p *Pass) Name() string {
	return PassName
}

// Run 对函数里的每条指令尝试 EVEX→VEX 压缩，返回是否有修改
// 目标不支持 AVX-512 时整个函数直接跳过，不检查任何指令。
// 每条指令只访问一次；指令之间互不影响，访问顺序无关紧要。
func (p *Pass) Run(fn *x86.Function) bool {
	p.report = Report{
		Function: fn.Name,
		ByOpcode: make(map[string]int),
	}

	if p.target == nil || !p.target.HasAVX512() {
		return false
	}

	changed := false
	for _, bb := range fn.Blocks {
		for _, mi := range bb.Insts {
			p.report.Scanned++
			if p.compressInst(mi) {
				changed = true
			}
		}
	}

	if changed {
		p.log.Debug("compressed evex instructions",
			zap.String("function", fn.Name),
			zap.Int("scanned", p.report.Scanned),
			zap.Int("compressed", p.report.Compressed))
	}
	return changed
}

// Report 返回最近一次 Run 的统计
func (p *Pass) Report() Report {
	return p.report
}

// compressInst 对单条指令执行压缩
// 任何一步不通过都原样保留指令: 操作码和操作数一个字节都不动。
func (p *Pass) compressInst(mi *x86.Instruction) bool {
	desc, ok := x86.LookupDescriptor(mi.Op)
	if !ok {
		return false
	}

	// 结构性检查: EVEX 编码、无掩码无广播、宽度 128/256
	width, ok := checkEligibility(desc)
	if !ok {
		return false
	}

	// 按宽度查对应分区
	newOp, ok := lookupVex(mi.Op, width)
	if !ok {
		return false
	}

	// 高位寄存器 VEX 编码不了
	ext, err := usesExtendedRegister(mi)
	if err != nil {
		// 表里出现 ZMM 操作数说明编码表生成有缺陷
		// DPanic: 开发环境直接崩，生产环境记错误日志后跳过
		p.log.DPanic("encoding table defect",
			zap.String("function", p.report.Function),
			zap.Stringer("opcode", mi.Op),
			zap.Error(err))
		return false
	}
	if ext {
		return false
	}

	// 个别操作码对需要先调整立即数，校验不过则整条放弃
	if !applyAdjustments(mi) {
		return false
	}

	mi.Op = newOp
	mi.SetPrintFlag(x86.PrintFlagCompressed)

	p.report.Compressed++
	p.report.ByOpcode[newOp.String()]++
	return true
}
