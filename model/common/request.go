package common

// ChatRequest 官网聊天挂件发来的消息体
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Page      string `json:"page"` // 发起咨询的页面路径, 仅用于日志
}
