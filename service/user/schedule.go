package user

import (
	"context"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/common"
)

// ScheduleService 预约链接服务
// 透传第三方预约平台, 平台不可用时回配置里的固定链接
type ScheduleService interface {
	GetBookingLink(ctx context.Context) common.ScheduleLink
}

type scheduleService struct{}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService() ScheduleService {
	return &scheduleService{}
}

func (s *scheduleService) GetBookingLink(ctx context.Context) common.ScheduleLink {
	fallback := common.ScheduleLink{
		Url:      global.Config.Responder.BookingUrl,
		Fallback: true,
	}

	if global.SchedulerService == nil {
		return fallback
	}

	url, err := global.SchedulerService.CreateBookingLink(ctx)
	if err != nil {
		global.Log.Warnf("获取一次性预约链接失败, 已回退固定链接: %v", err)
		return fallback
	}

	return common.ScheduleLink{Url: url}
}
