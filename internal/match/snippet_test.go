package match

import "testing"

// TestFirstSentence 句界判定: 句末标点后跟空白才算句界
func TestFirstSentence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"英文句号", "Refunds are processed within 5 days. Contact billing for the paperwork.", "Refunds are processed within 5 days."},
		{"无句界返回整段", "a single clause without terminator", "a single clause without terminator"},
		{"末尾句号无后继空白", "Just one sentence.", "Just one sentence."},
		{"感叹号", "Yes! We do that too.", "Yes!"},
		{"中文句号", "五天内退款。详情联系财务。", "五天内退款。详情联系财务。"},
		{"中文句号带空白", "五天内退款。 详情联系财务。", "五天内退款。"},
		{"小数点不拆句", "v2.5 ships soon", "v2.5 ships soon"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FirstSentence(c.input); got != c.want {
				t.Errorf("FirstSentence(%q) = %q, 期望 %q", c.input, got, c.want)
			}
		})
	}
}

// TestTruncateRunes 按字符数截断并追加省略号
func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 140); got != "short" {
		t.Errorf("长度未超限不应截断, 实际为 %q", got)
	}
	if got := TruncateRunes("abcdef", 3); got != "abc…" {
		t.Errorf("截断结果应为 abc…, 实际为 %q", got)
	}
	// 中文按字符数而非字节数
	if got := TruncateRunes("一二三四五", 2); got != "一二…" {
		t.Errorf("截断结果应为 一二…, 实际为 %q", got)
	}
	if got := TruncateRunes("whatever", 0); got != "whatever" {
		t.Errorf("非正数限制视为不截断, 实际为 %q", got)
	}
}
