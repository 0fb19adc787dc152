package user

import (
	"context"
	"errors"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/enum"
)

// LlmService 封装了与线上助手(LLM)相关的业务逻辑
type LlmService interface {
	// NewChat 把用户消息交给线上助手
	NewChat(ctx context.Context, message string) (string, error)
}

type llmService struct{}

// NewLlmService 创建一个新的LlmService实例
func NewLlmService() LlmService {
	return &llmService{}
}

// NewChat 业务层只做决策: 普通售前咨询用小模型和默认Prompt
func (s *llmService) NewChat(ctx context.Context, message string) (string, error) {
	if global.LlmService == nil {
		return "", errors.New("LLM服务未初始化")
	}

	return global.LlmService.ChatCompletion(
		ctx,
		enum.ModelSmall,
		enum.SystemPromptDefault,
		message,
	)
}
