package dto

// KnowledgeEntry 知识库种子文件中的单个条目
// 五个可匹配字段均可缺省; 全部缺省的条目永远不会被选中
type KnowledgeEntry struct {
	Title     string   `json:"title,omitempty"`
	Question  string   `json:"question,omitempty"`
	Questions []string `json:"questions,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Answer    string   `json:"answer,omitempty"`
}
