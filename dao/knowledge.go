package dao

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/db"
	"gitee.com/taoJie_1/consult-agent/model/dto"
	"gitee.com/taoJie_1/consult-agent/model/enum"
	"github.com/jmoiron/sqlx"
)

type KnowledgeDb struct{}

// GetKnowledgeAllList 按存储顺序取全部知识条目
// position升序保证打分平手时先到先得的语义
func (d *KnowledgeDb) GetKnowledgeAllList(list *[]db.Knowledge, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT `position`, `title`, `question`, `questions`, `keywords`, `tags`, `answer` FROM `%s` ORDER BY `position` ASC, `id` ASC;", db.Knowledge{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// CleanTable 清空表
func (d *KnowledgeDb) CleanTable(tx *sqlx.Tx) error {
	if tx == nil {
		return errors.New("请使用事务[kbfs01]")
	}

	switch global.Config.Database.Type {
	case string(enum.SQLITE):
		sql := fmt.Sprintf("DELETE FROM `%s`", db.Knowledge{}.TableName())
		if _, err := tx.Exec(sql); err != nil {
			return err
		}
		// 重置自增ID
		sql = fmt.Sprintf("DELETE FROM sqlite_sequence WHERE name='%s'", db.Knowledge{}.TableName())
		_, err := tx.Exec(sql)
		return err
	case string(enum.MYSQL):
		sql := fmt.Sprintf("TRUNCATE TABLE `%s`", db.Knowledge{}.TableName())
		_, err := tx.Exec(sql)
		return err
	}

	return errors.New("数据库类型错误[kbfs02]")
}

// BatchInsert 插入种子条目, 返回插入行数
// 无任何可匹配字段的条目也照常入库, 打分阶段自然得0分
func (d *KnowledgeDb) BatchInsert(data []dto.KnowledgeEntry, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[kbfs03]")
	}

	if len(data) == 0 {
		return 0, nil
	}

	var sqlData []map[string]interface{}
	for i, entry := range data {
		questions, err := json.Marshal(entry.Questions)
		if err != nil {
			return 0, fmt.Errorf("序列化questions失败: %w", err)
		}
		keywords, err := json.Marshal(entry.Keywords)
		if err != nil {
			return 0, fmt.Errorf("序列化keywords失败: %w", err)
		}
		tags, err := json.Marshal(entry.Tags)
		if err != nil {
			return 0, fmt.Errorf("序列化tags失败: %w", err)
		}

		sqlData = append(sqlData, map[string]interface{}{
			"position":  i,
			"title":     strings.TrimSpace(entry.Title),
			"question":  strings.TrimSpace(entry.Question),
			"questions": string(questions),
			"keywords":  string(keywords),
			"tags":      string(tags),
			"answer":    entry.Answer,
		})
	}

	sql, args, err := dbutil.getBatchInsertSql(db.Knowledge{}, sqlData)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}

	sql = tx.Rebind(sql)
	result, err := tx.Exec(sql, args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入数据失败: %w", err)
	}

	return result.RowsAffected()
}
