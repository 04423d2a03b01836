package compress

import "github.com/segmentio/encoding/json"

// ============================================================================
// 压缩统计报告
// ============================================================================

// Report 单个函数一次压缩的统计信息
type Report struct {
	Function   string         `json:"function"`
	Scanned    int            `json:"scanned"`
	Compressed int            `json:"compressed"`
	ByOpcode   map[string]int `json:"by_opcode,omitempty"`
}

// JSON 序列化为 JSON 文本
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
