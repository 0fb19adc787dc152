package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Addr           string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password       string `json:"password" mapstructure:"password" yaml:"password"`
	DB             int    `json:"db" mapstructure:"db" yaml:"db"`
	TelemetryTTL   int64  `json:"telemetry_ttl" mapstructure:"telemetry_ttl" yaml:"telemetry_ttl"`
	TelemetryKey   string `json:"telemetry_key" mapstructure:"telemetry_key" yaml:"telemetry_key"`
}

type Llm struct {
	Url         string   `json:"url" mapstructure:"url" yaml:"url"`
	Model       string   `json:"model" mapstructure:"model" yaml:"model"`
	Auth        string   `json:"auth" mapstructure:"auth" yaml:"auth"`
	Size        string   `json:"size" mapstructure:"size" yaml:"size"`
	Timeout     int64    `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	Temperature *float32 `json:"temperature" mapstructure:"temperature" yaml:"temperature"`
}

// Responder 离线意图应答器的可调参数
type Responder struct {
	// 知识库匹配的最低重叠得分, 低于该值视为低置信度
	MinMatchScore int `json:"min_match_score" mapstructure:"min_match_score" yaml:"min_match_score"`
	// 回声片段取归一化后的前几个词
	EchoWords int `json:"echo_words" mapstructure:"echo_words" yaml:"echo_words"`
	// 知识库答案首句截断长度
	SnippetLimit int `json:"snippet_limit" mapstructure:"snippet_limit" yaml:"snippet_limit"`
	// 知识库种子文件路径(JSON)
	KnowledgePath string `json:"knowledge_path" mapstructure:"knowledge_path" yaml:"knowledge_path"`
	// 预约链接, 用于若干固定话术
	BookingUrl string `json:"booking_url" mapstructure:"booking_url" yaml:"booking_url"`
}

type Scheduler struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Owner   string `json:"owner" mapstructure:"owner" yaml:"owner"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

type Oss struct {
	Endpoint        string `json:"endpoint" mapstructure:"endpoint" yaml:"endpoint"`
	AccessKeyId     string `json:"access_key_id" mapstructure:"access_key_id" yaml:"access_key_id"`
	AccessKeySecret string `json:"access_key_secret" mapstructure:"access_key_secret" yaml:"access_key_secret"`
	Bucket          string `json:"bucket" mapstructure:"bucket" yaml:"bucket"`
	Domain          string `json:"domain" mapstructure:"domain" yaml:"domain"`
	Dir             string `json:"dir" mapstructure:"dir" yaml:"dir"`
}
