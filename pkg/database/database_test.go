package database

import (
	"path/filepath"
	"testing"

	"trivia_backend/internal/config"
	"trivia_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.DBName = filepath.Join(t.TempDir(), "trivia.db")
	cfg.Database.LogLevel = "silent"
	return cfg
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, DBName: "trivia"})
		require.NoError(t, err, driver)
		assert.NotNil(t, d)
	}

	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitDBSeedsCategoriesOnly(t *testing.T) {
	db, err := InitDB(sqliteConfig(t))
	require.NoError(t, err)

	var categories []model.Category
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, len(DefaultCategories))
	assert.Equal(t, uint(1), categories[0].ID)
	assert.Equal(t, "Science", categories[0].Type)

	var questions int64
	require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
	assert.Zero(t, questions)
}

func TestInitDBWithSeedIsIdempotent(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Database.Seed = true

	db, err := InitDB(cfg)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	require.NoError(t, sqlDB.Close())

	db, err = InitDB(cfg)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.Equal(t, int64(len(SampleQuestions)), count)
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultCategories)), count)
}

func TestGormLogLevel(t *testing.T) {
	assert.NotEqual(t, gormLogLevel("silent"), gormLogLevel("info"))
	assert.Equal(t, gormLogLevel(""), gormLogLevel("warn"))
}
