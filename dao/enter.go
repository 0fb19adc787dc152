package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	// DB 关系库连接, 由 initialize 赋值
	DB *sqlx.DB

	dbutil = new(dbUtils)

	App = new(AppGroup)
)

type AppGroup struct {
	KnowledgeDb KnowledgeDb
	TelemetryDb TelemetryDb
}

// Tx 在事务中执行fn, 出错回滚
func Tx(fn func(tx *sqlx.Tx) error) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
