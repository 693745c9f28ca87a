// Package testutil 提供测试用的内存数据库
package testutil

import (
	"fmt"
	"testing"

	"trivia_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewEmptyDB 返回已迁移但没有数据的内存数据库
func NewEmptyDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewDB 返回写入了 6 个分类和 19 道示例题目的内存数据库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	if err := database.SeedQuestions(db); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return db
}
