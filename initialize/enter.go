package initialize

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []io.Closer
	reloadLock     sync.Mutex
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.InitTz)
	eg.Go(i.dbStart)

	// 非关键任务，失败只打印日志，不影响启动
	// 线上助手/遥测/预约/OSS任一缺席, 离线应答器仍可支撑聊天挂件
	eg.Go(func() error {
		i.initRedis()
		return nil
	})
	eg.Go(func() error {
		i.initLlm()
		return nil
	})
	eg.Go(func() error {
		i.initScheduler()
		return nil
	})
	eg.Go(func() error {
		i.initOss()
		return nil
	})

	return eg.Wait()
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	i.timerStop()
	if err := i.dbClose(); err != nil {
		global.Log.Warnf("关闭数据库失败: %v", err)
	}
	if err := i.redisClose(); err != nil {
		global.Log.Warnf("关闭Redis失败: %v", err)
	}
	for _, closer := range i.logFileClosers {
		_ = closer.Close()
	}
}

// StartSystem 启动系统级服务，如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
}

func (i *Initializer) InitTz() error {
	Location, err := time.LoadLocation(global.Config.Tz)
	if err != nil {
		return fmt.Errorf("时区配置失败[siortuj]: %w", err)
	}
	global.Tz = Location
	return nil
}
