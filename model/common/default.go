package common

import "gitee.com/taoJie_1/consult-agent/model/enum"

// ChatReply 聊天接口的应答体
type ChatReply struct {
	Reply  string           `json:"reply"`
	Source enum.ReplySource `json:"source"`
}

// ScheduleLink 预约链接接口的应答体
type ScheduleLink struct {
	Url      string `json:"url"`
	Fallback bool   `json:"fallback"` // 是否为兜底链接(第三方API不可用)
}

// IntentStats 意图遥测面板的应答体
type IntentStats struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// LlmMessage 结构体定义了发送给LLM的聊天消息格式
type LlmMessage struct {
	Role    string `json:"role"`    // 消息角色，例如 "user", "assistant", "system"
	Content string `json:"content"` // 消息内容
}
