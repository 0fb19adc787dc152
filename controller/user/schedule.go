package user

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/consult-agent/model/common"
	"gitee.com/taoJie_1/consult-agent/service"
)

type ScheduleApi struct{}

// GetLink 给前端换取一个预约链接
func (d *ScheduleApi) GetLink(ctx *gin.Context) {
	link := service.Service.UserServiceGroup.ScheduleService.GetBookingLink(ctx.Request.Context())
	common.Success(ctx, link)
}
