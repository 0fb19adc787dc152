package db

// Knowledge 知识库条目表
// questions/keywords/tags 以JSON数组字符串存储
type Knowledge struct {
	BaseField
	Position  int    `db:"position" json:"position" info:"条目顺序, 打分平手时先到先得"`
	Title     string `db:"title" json:"title" info:"主题标签"`
	Question  string `db:"question" json:"question" info:"单个问法"`
	Questions string `db:"questions" json:"questions" info:"备选问法(JSON)"`
	Keywords  string `db:"keywords" json:"keywords" info:"关键词(JSON)"`
	Tags      string `db:"tags" json:"tags" info:"标签(JSON)"`
	Answer    string `db:"answer" json:"answer" info:"答案正文"`
}

func (Knowledge) TableName() string {
	return `knowledge_entries`
}
