package initialize

import (
	"context"
	"reflect"
	"strings"
	"time"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/config"
	"gitee.com/taoJie_1/consult-agent/service"
	"gitee.com/taoJie_1/consult-agent/service/user"
	"gitee.com/taoJie_1/consult-agent/task"
	"golang.org/x/sync/errgroup"
)

// HandleConfigChange 检测配置变化并安全地、并发地重载相关服务
func (i *Initializer) HandleConfigChange(oldConfig, newConfig *config.Config) {
	i.reloadLock.Lock()
	defer i.reloadLock.Unlock()

	var restartNeeded []string

	// --- 1. 检查不可热重载的高风险配置 ---
	if !reflect.DeepEqual(oldConfig.Database, newConfig.Database) {
		restartNeeded = append(restartNeeded, "database")
	}
	if oldConfig.GinAddr != newConfig.GinAddr {
		restartNeeded = append(restartNeeded, "gin_addr")
	}
	if oldConfig.GinLogPath != newConfig.GinLogPath || oldConfig.RunLogPath != newConfig.RunLogPath {
		restartNeeded = append(restartNeeded, "log_path")
	}

	// --- 2. 并发执行可安全热重载的任务 ---
	eg, _ := errgroup.WithContext(context.Background())

	if oldConfig.Tz != newConfig.Tz {
		eg.Go(func() error {
			if err := i.InitTz(); err != nil {
				global.Log.Errorf("热重载时区失败: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Redis, newConfig.Redis) {
		eg.Go(func() error {
			if err := i.redisClose(); err != nil {
				global.Log.Warnf("关闭旧Redis客户端失败: %v", err)
			}
			if err := i.initRedis(); err != nil {
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Llm, newConfig.Llm) {
		eg.Go(func() error {
			return i.initLlm()
		})
	}

	if !reflect.DeepEqual(oldConfig.Scheduler, newConfig.Scheduler) {
		eg.Go(func() error {
			return i.initScheduler()
		})
	}

	if !reflect.DeepEqual(oldConfig.Oss, newConfig.Oss) {
		eg.Go(func() error {
			return i.initOss()
		})
	}

	if err := eg.Wait(); err != nil {
		global.Log.Errorf("配置热重载部分失败: %v", err)
	}

	// --- 3. 重建持有配置快照的服务 ---
	// 应答器在构造时读取了阈值等参数, 任何相关变化都整组重建
	if !reflect.DeepEqual(oldConfig.Responder, newConfig.Responder) ||
		!reflect.DeepEqual(oldConfig.Redis, newConfig.Redis) ||
		!reflect.DeepEqual(oldConfig.Llm, newConfig.Llm) {
		service.Service.UserServiceGroup = user.NewServiceGroup()
		global.Log.Info("用户服务组已按新配置重建")
	}

	// 种子文件路径变化, 防抖后重建知识库
	if oldConfig.Responder.KnowledgePath != newConfig.Responder.KnowledgePath {
		task.NewManager().DebounceKnowledgeReload(5 * time.Second)
	}

	if len(restartNeeded) > 0 {
		global.Log.Warnf("以下配置变化需要重启才能生效: %s", strings.Join(restartNeeded, ", "))
	}
}
