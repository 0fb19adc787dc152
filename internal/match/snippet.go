package match

import (
	"regexp"
	"unicode/utf8"
)

// 句末标点后跟空白
var sentenceEnd = regexp.MustCompile(`([.!?。！？])\s`)

// FirstSentence 取答案正文的第一句(保留句末标点)。
// 找不到句界时返回整段文本。
func FirstSentence(s string) string {
	if loc := sentenceEnd.FindStringSubmatchIndex(s); loc != nil {
		// loc[3] 是捕获组(句末标点)的结束位置
		return s[:loc[3]]
	}
	return s
}

// TruncateRunes 将文本截断到最多limit个字符, 截断时追加省略号
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	return string(runes[:limit]) + "…"
}
