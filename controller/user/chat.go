package user

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/common"
	"gitee.com/taoJie_1/consult-agent/model/enum"
	"gitee.com/taoJie_1/consult-agent/service"
)

// 线上助手的单次应答时限
const liveReplyTimeout = 15 * time.Second

type ChatApi struct{}

// HandleChat 官网聊天挂件的同步应答接口
// 应答源优先级: 线上助手 -> 离线应答器 -> 固定兜底
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.UserServiceGroup.Validator.ValidatorChatRequest(&req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	reply := d.resolveReply(ctx.Request.Context(), req.Message)
	common.Success(ctx, reply)
}

func (d *ChatApi) resolveReply(ctx context.Context, message string) common.ChatReply {
	// 先问线上助手
	liveCtx, cancel := context.WithTimeout(ctx, liveReplyTimeout)
	defer cancel()

	answer, err := service.Service.UserServiceGroup.LlmService.NewChat(liveCtx, message)
	if err == nil && answer != "" {
		return common.ChatReply{Reply: answer, Source: enum.ReplySourceLive}
	}
	if err != nil {
		global.Log.Warnf("[chat]线上助手不可用, 转离线应答: %v", err)
	}

	// 线上不可用, 走离线应答器
	if offline, ok := service.Service.UserServiceGroup.ResponderService.GetOfflineReply(message); ok {
		return common.ChatReply{Reply: offline, Source: enum.ReplySourceOffline}
	}

	// 离线应答器也无意见(空输入等), 回固定兜底
	return common.ChatReply{Reply: string(enum.ReplyMsgDefault), Source: enum.ReplySourceDefault}
}
