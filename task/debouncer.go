package task

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/consult-agent/global"
)

var (
	knowledgeReloadTimer *time.Timer
	knowledgeReloadMutex sync.Mutex
)

// DebounceKnowledgeReload 为 KnowledgeReloader 提供防抖调用功能。
// 每次调用都会重置定时器。
func (m *Manager) DebounceKnowledgeReload(delay time.Duration) {
	knowledgeReloadMutex.Lock()
	defer knowledgeReloadMutex.Unlock()

	// 如果已存在一个定时器，则停止它
	if knowledgeReloadTimer != nil {
		knowledgeReloadTimer.Stop()
	}

	// 创建一个新的定时器，在延迟时间后执行同步任务
	knowledgeReloadTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的知识库重同步任务...")
		if err := m.KnowledgeReloader(); err != nil {
			global.Log.Errorf("执行经防抖处理的知识库重同步任务失败: %v", err)
		}
	})
	global.Log.Infof("知识库重同步任务已调度在 %v 后执行", delay)
}
