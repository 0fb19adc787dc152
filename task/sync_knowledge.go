package task

import (
	"encoding/json"
	"fmt"
	"os"

	"gitee.com/taoJie_1/consult-agent/dao"
	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/internal/match"
	"gitee.com/taoJie_1/consult-agent/model/db"
	"gitee.com/taoJie_1/consult-agent/model/dto"
	"github.com/jmoiron/sqlx"
)

// KnowledgeReloader 从种子文件重建知识库
// 流程: 读取JSON -> 事务内清表重灌 -> 重新发布内存快照
func (m *Manager) KnowledgeReloader() error {
	global.Log.Println("开始同步知识库种子文件...")

	entries, err := parseKnowledgeFile(global.Config.Responder.KnowledgePath)
	if err != nil {
		return fmt.Errorf("读取知识库种子文件失败: %w", err)
	}

	var count int64
	err = dao.Tx(func(tx *sqlx.Tx) (e error) {
		// 清空旧数据
		if e = dao.App.KnowledgeDb.CleanTable(tx); e != nil {
			return e
		}

		// 插入新数据
		count, e = dao.App.KnowledgeDb.BatchInsert(entries, tx)
		return e
	})
	if err != nil {
		global.Log.Errorln("[kbsync1]同步知识库到数据库失败:", err)
		return fmt.Errorf("同步知识库到数据库失败: %w", err)
	}

	global.Log.Printf("成功从种子文件同步 %d 条知识条目到数据库", count)

	return m.LoadKnowledge()
}

// LoadKnowledge 从数据库加载知识条目到内存
// 词元集合在此处一次性预计算, 应答器运行期零解析
func (m *Manager) LoadKnowledge() error {
	var rows []db.Knowledge = make([]db.Knowledge, 0)

	if err := dao.App.KnowledgeDb.GetKnowledgeAllList(&rows); err != nil {
		return fmt.Errorf("加载知识库失败: %w", err)
	}

	entries := make([]match.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, match.NewEntry(
			row.Title,
			row.Question,
			row.Answer,
			decodeList(row.Questions),
			decodeList(row.Keywords),
			decodeList(row.Tags),
		))
	}

	global.Knowledge.Replace(entries)
	global.Log.Printf("成功加载 %d 条知识条目到内存", len(entries))

	return nil
}

// parseKnowledgeFile 解析知识库种子JSON文件
func parseKnowledgeFile(path string) ([]dto.KnowledgeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []dto.KnowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}
	return entries, nil
}

// decodeList 解码存储为JSON数组的字段, 解不开按空处理
func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		global.Log.Warnf("知识条目的列表字段无法解析, 已忽略: %s", raw)
		return nil
	}
	return list
}
