package task

// Manager 后台任务的统一入口
type Manager struct{}

// NewManager 创建一个新的任务管理器
func NewManager() *Manager {
	return &Manager{}
}
