package user

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/consult-agent/model/common"
	"gitee.com/taoJie_1/consult-agent/service"
)

type DashboardApi struct{}

// IntentStats 意图遥测面板数据
func (d *DashboardApi) IntentStats(ctx *gin.Context) {
	stats, err := service.Service.UserServiceGroup.DashboardService.GetIntentStats(ctx.Request.Context())
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, stats)
}
