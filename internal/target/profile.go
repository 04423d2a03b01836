// Package target 实现目标处理器特性档案
package target

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sys/cpu"
)

// 常量定义
const (
	ProfileFileName = "target.toml" // 默认档案文件名
)

// Profile 目标处理器特性档案
// 编码压缩等后端 Pass 据此判断指令形式在目标上是否合法
type Profile struct {
	CPU string // 处理器名 (仅展示用)

	AVX      bool
	AVX2     bool
	AVX512F  bool
	AVX512VL bool
	AVX512BW bool
	AVX512DQ bool
}

// HasAVX512 目标是否支持 EVEX 编码的指令集
func (p *Profile) HasAVX512() bool {
	return p.AVX512F
}

// ============================================================================
// 档案加载
// ============================================================================

// profileFile target.toml 的文件结构
type profileFile struct {
	Target struct {
		CPU      string   `toml:"cpu"`
		Features []string `toml:"features"`
	} `toml:"target"`
}

// Load 从 TOML 文件加载特性档案
//
// 文件格式:
//
//	[target]
//	cpu = "skylake-avx512"
//	features = ["avx", "avx2", "avx512f", "avx512vl"]
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target profile: %w", err)
	}

	var file profileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse target profile: %w", err)
	}

	profile := &Profile{CPU: file.Target.CPU}
	for _, feature := range file.Target.Features {
		switch feature {
		case "avx":
			profile.AVX = true
		case "avx2":
			profile.AVX2 = true
		case "avx512f":
			profile.AVX512F = true
		case "avx512vl":
			profile.AVX512VL = true
		case "avx512bw":
			profile.AVX512BW = true
		case "avx512dq":
			profile.AVX512DQ = true
		default:
			return nil, fmt.Errorf("unknown target feature %q", feature)
		}
	}
	return profile, nil
}

// ============================================================================
// 宿主探测
// ============================================================================

// Detect 探测当前宿主处理器的特性档案
func Detect() *Profile {
	return &Profile{
		CPU:      "host",
		AVX:      cpu.X86.HasAVX,
		AVX2:     cpu.X86.HasAVX2,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512VL: cpu.X86.HasAVX512VL,
		AVX512BW: cpu.X86.HasAVX512BW,
		AVX512DQ: cpu.X86.HasAVX512DQ,
	}
}
