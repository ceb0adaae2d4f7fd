package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 创建数据库连接
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dbType := cfg.DBType
	if dbType == "" {
		dbType = "sqlite"
	}

	dialector, err := newDialector(dbType, cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newGormLogger(),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", dbType, err)
	}

	// 配置连接池
	configurePool(db, cfg)

	return db, nil
}

// newDialector 根据数据库类型构建 gorm 方言
func newDialector(dbType string, cfg *config.Config) (gorm.Dialector, error) {
	switch dbType {
	case "sqlite", "sqlite3":
		path := cfg.DBFilePath
		if path == "" {
			path = "./data/photo_album.db"
		}
		utils.LogIfDevf("Using SQLite database: %s", path)
		// WAL 模式，开启外键
		return sqlite.Open(fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=on", path)), nil

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUsername, cfg.DBPassword, cfg.DBName)
		utils.LogIfDevf("Using PostgreSQL database: %s@%s:%d/%s", cfg.DBUsername, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return postgres.Open(dsn), nil

	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUsername, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		utils.LogIfDevf("Using MySQL database: %s@%s:%d/%s", cfg.DBUsername, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return mysql.Open(dsn), nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// newGormLogger 创建 GORM 日志器
func newGormLogger() logger.Interface {
	logLevel := logger.Silent
	colorful := false

	if config.IsDevelopment() {
		logLevel = logger.Info
		colorful = true
	}

	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  colorful,
		},
	)
}

// configurePool 配置连接池
func configurePool(db *gorm.DB, cfg *config.Config) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	}
}

// AutoMigrate 自动迁移数据库结构
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Album{}, "Photos", &models.AlbumPhoto{}); err != nil {
		return fmt.Errorf("failed to setup albums_photos join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Photo{}, "Albums", &models.AlbumPhoto{}); err != nil {
		return fmt.Errorf("failed to setup albums_photos join table: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Album{},
		&models.Photo{},
		&models.AlbumPhoto{},
	)
}
