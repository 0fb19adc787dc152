package dao

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/internal/redis"
	"gitee.com/taoJie_1/consult-agent/utils"
)

type TelemetryDb struct{}

// telemetryKey 意图计数使用的hash键
func (d *TelemetryDb) telemetryKey() string {
	if global.Config != nil && global.Config.Redis.TelemetryKey != "" {
		return global.Config.Redis.TelemetryKey
	}
	return redis.KeyPrefixTelemetry + "intents"
}

// IncrIntent 给意图计数加一
// 首次写入后按配置刷新TTL, 计数只用于面板展示, 允许过期归零
func (d *TelemetryDb) IncrIntent(ctx context.Context, intent string) error {
	if global.RedisClient == nil {
		return errors.New("Redis客户端未初始化")
	}

	key := d.telemetryKey()
	if err := global.RedisClient.HIncrBy(ctx, key, intent, 1).Err(); err != nil {
		return err
	}

	if ttl := global.Config.Redis.TelemetryTTL; ttl > 0 {
		if err := global.RedisClient.Expire(ctx, key, utils.GetTTLWithJitter(ttl)).Err(); err != nil {
			global.Log.Warnf("刷新遥测计数TTL失败: %v", err)
		}
	}
	return nil
}

// GetIntentCounts 读取全部意图计数
func (d *TelemetryDb) GetIntentCounts(ctx context.Context) (map[string]int64, error) {
	if global.RedisClient == nil {
		return nil, errors.New("Redis客户端未初始化")
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	raw, err := global.RedisClient.HGetAll(ctx, d.telemetryKey()).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			global.Log.Warnf("遥测计数字段 %s 的值无法解析: %s", field, v)
			continue
		}
		counts[field] = n
	}
	return counts, nil
}
