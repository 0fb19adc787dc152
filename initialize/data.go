package initialize

import (
	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	if err := taskManager.LoadKnowledge(); err != nil {
		global.Log.Errorln("启动时加载知识库失败, 离线应答只剩意图规则:", err)
	}
}
