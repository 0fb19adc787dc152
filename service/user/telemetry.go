package user

import (
	"context"
	"time"

	"gitee.com/taoJie_1/consult-agent/dao"
	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/enum"
	"github.com/sirupsen/logrus"
)

// TelemetryService 遥测接收器: 每次应答记录一次命中的意图
// 失败绝不影响调用方, 不返回错误, 内部吞掉一切异常
type TelemetryService interface {
	Record(intent enum.Intent, extra map[string]interface{})
}

type telemetryService struct{}

// NewTelemetryService 创建 TelemetryService 实例
func NewTelemetryService() TelemetryService {
	return &telemetryService{}
}

func (s *telemetryService) Record(intent enum.Intent, extra map[string]interface{}) {
	defer func() {
		if p := recover(); p != nil {
			if global.Log != nil {
				global.Log.Warnf("[telemetry]记录意图 %s 时发生panic(已忽略): %v", intent, p)
			}
		}
	}()

	if global.Log != nil {
		fields := logrus.Fields{"intent": intent}
		for k, v := range extra {
			fields[k] = v
		}
		global.Log.WithFields(fields).Debug("离线应答命中意图")
	}

	if global.RedisClient == nil {
		return
	}

	// 计数写入走协程, 不阻塞应答路径
	go func() {
		defer func() {
			if p := recover(); p != nil && global.Log != nil {
				global.Log.Warnf("[telemetry]意图计数panic(已忽略): %v", p)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := dao.App.TelemetryDb.IncrIntent(ctx, string(intent)); err != nil {
			global.Log.Debugf("[telemetry]意图计数写入失败(已忽略): %v", err)
		}
	}()
}
