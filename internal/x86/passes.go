package x86

// ============================================================================
// 机器码 Pass 接口
// ============================================================================

// Pass 机器码优化 Pass 接口
type Pass interface {
	Name() string
	Run(fn *Function) bool // 返回是否有修改
}

// ============================================================================
// Pass 管理器
// ============================================================================

// PassManager Pass 管理器
type PassManager struct {
	passes []Pass
	stats  PassStats
}

// PassStats Pass 统计信息
type PassStats struct {
	PassesRun      int
	TotalChanges   int
	PerPassChanges map[string]int
}

// NewPassManager 创建 Pass 管理器
func NewPassManager() *PassManager {
	return &PassManager{
		passes: make([]Pass, 0),
		stats: PassStats{
			PerPassChanges: make(map[string]int),
		},
	}
}

// AddPass 添加 Pass
func (pm *PassManager) AddPass(p Pass) {
	pm.passes = append(pm.passes, p)
}

// Run 运行所有 Pass，返回是否有任何修改
func (pm *PassManager) Run(fn *Function) bool {
	changed := false
	for _, p := range pm.passes {
		pm.stats.PassesRun++
		if p.Run(fn) {
			changed = true
			pm.stats.TotalChanges++
			pm.stats.PerPassChanges[p.Name()]++
		}
	}
	return changed
}

// RunUntilFixed 运行 Pass 直到不再有改变
func (pm *PassManager) RunUntilFixed(fn *Function, maxIters int) {
	for i := 0; i < maxIters; i++ {
		changed := false
		for _, p := range pm.passes {
			if p.Run(fn) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// Stats 获取统计信息
func (pm *PassManager) Stats() PassStats {
	return pm.stats
}
