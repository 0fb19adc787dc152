package global

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/consult-agent/internal/llm"
	"gitee.com/taoJie_1/consult-agent/internal/match"
	"gitee.com/taoJie_1/consult-agent/internal/oss"
	"gitee.com/taoJie_1/consult-agent/internal/redis"
	"gitee.com/taoJie_1/consult-agent/internal/scheduler"
	"gitee.com/taoJie_1/consult-agent/model/config"
	"gitee.com/taoJie_1/consult-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 业务逻辑禁止修改
var (
	Config           *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log              *logrus.Logger
	Tz               *time.Location
	Llm              map[enum.LlmSize]*openai.Client = make(map[enum.LlmSize]*openai.Client, 3)
	LlmService       llm.Service
	RedisClient      redis.Service
	SchedulerService scheduler.Service
	OssService       oss.Service
	Knowledge        *KnowledgeStore = new(KnowledgeStore)
)

// KnowledgeStore 知识库的进程级只读快照
// 同步任务整体替换, 应答器只读, 条目顺序即加载顺序
type KnowledgeStore struct {
	mu      sync.RWMutex
	entries []match.Entry
}

// Replace 原子替换整个快照
func (s *KnowledgeStore) Replace(entries []match.Entry) {
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Snapshot 返回当前快照(调用方不得修改)
func (s *KnowledgeStore) Snapshot() []match.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Len 当前条目数
func (s *KnowledgeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
