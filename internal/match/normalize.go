package match

import "strings"

// Normalize 把原始文本归一化为小写字母数字词元序列。
// 非 [a-z0-9] 且非空白的字符一律替换为空格, 再按空白切分。
// 纯函数, 空输入返回空序列。
func Normalize(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))

	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	// Fields 自带去空词元
	return strings.Fields(b.String())
}
