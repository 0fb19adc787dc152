package utils

import (
	"strings"
	"testing"
	"time"
)

// TestReadyFile 对象键生成: 目录按年月归档, 文件名带扩展名
func TestReadyFile(t *testing.T) {
	loc := time.UTC
	dir, name := ReadyFile("upload", loc, ".png")
	if dir == "" || name == "" {
		t.Fatal("生成的目录和文件名不应为空")
	}
	if !strings.HasPrefix(dir, "upload/") {
		t.Errorf("目录应以静态目录开头, 实际为 %q", dir)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("文件名应保留扩展名, 实际为 %q", name)
	}
}

// TestGetTTLWithJitter 抖动后的TTL不小于基础值, 小基础值不应panic
func TestGetTTLWithJitter(t *testing.T) {
	for _, base := range []int64{1, 5, 86400} {
		got := GetTTLWithJitter(base)
		min := time.Duration(base) * time.Second
		max := time.Duration(base+base/10+1) * time.Second
		if got < min || got > max {
			t.Errorf("GetTTLWithJitter(%d) = %v, 应在 [%v, %v] 内", base, got, min, max)
		}
	}
	if got := GetTTLWithJitter(0); got != 0 {
		t.Errorf("非正数基础TTL应返回0, 实际为 %v", got)
	}
}

// TestParseDateFromLogFileName 带日期后缀的日志文件名解析
func TestParseDateFromLogFileName(t *testing.T) {
	loc := time.UTC

	d, ok := ParseDateFromLogFileName("run.log.2026-08-28", loc)
	if !ok || d.Format("2006-01-02") != "2026-08-28" {
		t.Errorf("应解析出日期2026-08-28, 实际为 %v, %v", d, ok)
	}

	for _, name := range []string{"run.log", "data.db", "gin.log.notadate"} {
		if _, ok := ParseDateFromLogFileName(name, loc); ok {
			t.Errorf("%q 不应被解析为带日期的日志文件", name)
		}
	}
}
