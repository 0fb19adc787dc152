package user

import (
	"context"
	"errors"

	"gitee.com/taoJie_1/consult-agent/dao"
	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/common"
)

// DashboardService 意图遥测面板
type DashboardService interface {
	// GetIntentStats 聚合各意图的累计命中次数
	GetIntentStats(ctx context.Context) (*common.IntentStats, error)
}

type dashboardService struct{}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService() DashboardService {
	return &dashboardService{}
}

func (s *dashboardService) GetIntentStats(ctx context.Context) (*common.IntentStats, error) {
	if global.RedisClient == nil {
		return nil, errors.New("Redis未初始化, 遥测面板不可用")
	}

	counts, err := dao.App.TelemetryDb.GetIntentCounts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &common.IntentStats{Counts: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}
