package match

import "strings"

// Entry 内存中的知识库条目, 词元集合在加载时构建一次
type Entry struct {
	Title     string
	Question  string
	Questions []string
	Keywords  []string
	Tags      []string
	Answer    string

	tokenSet map[string]struct{}
}

// NewEntry 构建条目并预计算其可匹配词元集合。
// 五个可匹配字段拼接后统一归一化; 集合为空的条目永远得0分。
func NewEntry(title, question, answer string, questions, keywords, tags []string) Entry {
	e := Entry{
		Title:     title,
		Question:  question,
		Questions: questions,
		Keywords:  keywords,
		Tags:      tags,
		Answer:    answer,
	}

	parts := make([]string, 0, 2+len(questions)+len(keywords)+len(tags))
	if question != "" {
		parts = append(parts, question)
	}
	parts = append(parts, questions...)
	parts = append(parts, keywords...)
	parts = append(parts, tags...)
	if title != "" {
		parts = append(parts, title)
	}

	tokens := Normalize(strings.Join(parts, " "))
	if len(tokens) > 0 {
		e.tokenSet = make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			e.tokenSet[t] = struct{}{}
		}
	}
	return e
}

// Topic 取条目的人类可读主题: 优先title, 其次question, 否则固定文案
func (e *Entry) Topic() string {
	if e.Title != "" {
		return e.Title
	}
	if e.Question != "" {
		return e.Question
	}
	return "this topic"
}

// Matchable 条目是否包含任何可匹配词元
func (e *Entry) Matchable() bool {
	return len(e.tokenSet) > 0
}
