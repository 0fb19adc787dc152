package task

import (
	"os"
	"path/filepath"
	"testing"

	"gitee.com/taoJie_1/consult-agent/global"
	"github.com/sirupsen/logrus"
)

func init() {
	global.Log = logrus.New()
}

// TestParseKnowledgeFile 种子文件的解析与缺省字段处理
func TestParseKnowledgeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")
	seed := `[
		{"title": "Refund Policy", "question": "what is your refund policy", "keywords": ["refund"], "answer": "Refunds are processed within 5 days."},
		{"answer": "orphan answer without matchable fields"}
	]`
	if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := parseKnowledgeFile(path)
	if err != nil {
		t.Fatalf("解析种子文件失败: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("应解析出2个条目, 实际为 %d", len(entries))
	}
	if entries[0].Title != "Refund Policy" || len(entries[0].Keywords) != 1 {
		t.Errorf("首个条目字段解析不符: %+v", entries[0])
	}
	if entries[1].Question != "" || entries[1].Answer == "" {
		t.Errorf("缺省字段应保持零值: %+v", entries[1])
	}
}

// TestParseKnowledgeFileErrors 文件缺失与非法JSON都应报错
func TestParseKnowledgeFileErrors(t *testing.T) {
	if _, err := parseKnowledgeFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("缺失的种子文件应报错")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := parseKnowledgeFile(path); err == nil {
		t.Error("非法JSON应报错")
	}
}

// TestDecodeList JSON数组字段解码, 解不开按空处理
func TestDecodeList(t *testing.T) {
	if got := decodeList(`["a","b"]`); len(got) != 2 {
		t.Errorf("应解码出2个元素, 实际为 %v", got)
	}
	if got := decodeList(""); got != nil {
		t.Errorf("空串应返回nil, 实际为 %v", got)
	}
	if got := decodeList("not json"); got != nil {
		t.Errorf("非法JSON应返回nil, 实际为 %v", got)
	}
}
