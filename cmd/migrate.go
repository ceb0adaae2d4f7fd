package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	"github.com/spf13/cobra"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// migrateCmd 数据库迁移命令，不带子命令时只同步表结构
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Create or update the schema of the configured database. Use "migrate run" to copy data between databases.`,
	Run: func(cmd *cobra.Command, args []string) {
		config.InitConfig()
		provider, err := database.NewGormProvider(config.Get())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer provider.Close()

		if err := provider.AutoMigrate(); err != nil {
			log.Fatalf("Failed to auto migrate database: %v", err)
		}
		log.Printf("Schema of %s database is up to date", provider.Name())
	},
}

// migrateRunCmd 执行迁移命令
var migrateRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Copy all data from one database to another",
	Long: `Copy users, photos, albums and album photos from a source database to a target database.

Examples:
  # Migrate from SQLite to PostgreSQL
  photo-album migrate run --from-type sqlite --from-dsn ./data/photo_album.db --to-type postgres --to-dsn "host=localhost user=postgres password=secret dbname=photo_album port=5432"

  # Stop on the first conflicting row
  photo-album migrate run --from-type sqlite --from-dsn ./a.db --to-type mysql --to-dsn "..." --on-conflict=error`,
	Run: func(cmd *cobra.Command, args []string) {
		fromType, _ := cmd.Flags().GetString("from-type")
		toType, _ := cmd.Flags().GetString("to-type")
		fromDSN, _ := cmd.Flags().GetString("from-dsn")
		toDSN, _ := cmd.Flags().GetString("to-dsn")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		onConflict, _ := cmd.Flags().GetString("on-conflict")

		stats, err := runMigration(context.Background(), fromType, fromDSN, toType, toDSN, batchSize, onConflict)
		if stats != nil {
			printMigrateStats(stats)
		}
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration completed successfully!")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateRunCmd)

	migrateRunCmd.Flags().String("from-type", "", "Source database type (sqlite, postgres, mysql)")
	migrateRunCmd.Flags().String("to-type", "", "Target database type (sqlite, postgres, mysql)")
	migrateRunCmd.Flags().String("from-dsn", "", "Source database DSN/connection string")
	migrateRunCmd.Flags().String("to-dsn", "", "Target database DSN/connection string")
	migrateRunCmd.Flags().Int("batch-size", 100, "Batch size for data migration")
	migrateRunCmd.Flags().String("on-conflict", "skip", "Conflict resolution strategy: skip (default), error")
}

// migrateStats 迁移统计
type migrateStats struct {
	users       int64
	photos      int64
	albums      int64
	albumPhotos int64
}

// runMigration 执行数据库迁移
func runMigration(ctx context.Context, fromType, fromDSN, toType, toDSN string, batchSize int, onConflict string) (*migrateStats, error) {
	// 验证冲突处理策略
	if onConflict != "skip" && onConflict != "error" {
		return nil, fmt.Errorf("invalid on-conflict strategy: %s (must be skip or error)", onConflict)
	}
	if fromType == "" || toType == "" {
		return nil, fmt.Errorf("both --from-type and --to-type are required")
	}
	if fromDSN == "" || toDSN == "" {
		return nil, fmt.Errorf("both --from-dsn and --to-dsn are required")
	}
	if fromType == toType && fromDSN == toDSN {
		return nil, fmt.Errorf("source and target databases are the same")
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	log.Printf("Migrating from %s to %s", fromType, toType)
	log.Printf("Source: %s", maskDSN(fromDSN))
	log.Printf("Target: %s", maskDSN(toDSN))

	sourceDB, err := openDatabase(fromType, fromDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to source database: %w", err)
	}
	defer closeDatabase(sourceDB)

	targetDB, err := openDatabase(toType, toDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target database: %w", err)
	}
	defer closeDatabase(targetDB)

	log.Println("Migrating database schema...")
	if err := database.AutoMigrate(targetDB); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	stats := &migrateStats{}
	src := sourceDB.WithContext(ctx)
	dst := targetDB.WithContext(ctx)

	// 按外键依赖顺序复制
	if stats.users, err = copyRows[models.User](src, dst, "id", batchSize, onConflict); err != nil {
		return stats, fmt.Errorf("users migration failed: %w", err)
	}
	if stats.photos, err = copyRows[models.Photo](src, dst, "id", batchSize, onConflict); err != nil {
		return stats, fmt.Errorf("photos migration failed: %w", err)
	}
	if stats.albums, err = copyRows[models.Album](src, dst, "id", batchSize, onConflict); err != nil {
		return stats, fmt.Errorf("albums migration failed: %w", err)
	}
	if stats.albumPhotos, err = copyRows[models.AlbumPhoto](src, dst, "album_id, photo_id", batchSize, onConflict); err != nil {
		return stats, fmt.Errorf("albums_photos migration failed: %w", err)
	}

	if toType == "postgres" || toType == "postgresql" {
		if err := resetPostgresSequences(dst); err != nil {
			return stats, fmt.Errorf("failed to reset sequences: %w", err)
		}
	}

	return stats, nil
}

// copyRows 分批复制一张表，返回写入目标库的行数
func copyRows[T any](src, dst *gorm.DB, order string, batchSize int, onConflict string) (int64, error) {
	var copied int64
	for offset := 0; ; offset += batchSize {
		var rows []T
		if err := src.Order(order).Limit(batchSize).Offset(offset).Find(&rows).Error; err != nil {
			return copied, err
		}
		if len(rows) == 0 {
			return copied, nil
		}

		q := dst.Omit(clause.Associations)
		if onConflict == "skip" {
			q = q.Clauses(clause.OnConflict{DoNothing: true})
		}
		result := q.Create(&rows)
		if result.Error != nil {
			return copied, result.Error
		}
		copied += result.RowsAffected
	}
}

// resetPostgresSequences 显式写入 ID 后同步自增序列
func resetPostgresSequences(db *gorm.DB) error {
	for _, table := range []string{"users", "photos", "albums"} {
		sql := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s", table, table)
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}
	return nil
}

// openDatabase 打开数据库连接
func openDatabase(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// maskDSN 隐藏敏感信息
func maskDSN(dsn string) string {
	if len(dsn) > 50 {
		return dsn[:50] + "..."
	}
	return dsn
}

// printMigrateStats 打印迁移统计
func printMigrateStats(stats *migrateStats) {
	fmt.Println()
	fmt.Println("========================================")
	fmt.Println("       Migration Statistics")
	fmt.Println("========================================")
	fmt.Printf("Users migrated:         %d\n", stats.users)
	fmt.Printf("Photos migrated:        %d\n", stats.photos)
	fmt.Printf("Albums migrated:        %d\n", stats.albums)
	fmt.Printf("Album photos migrated:  %d\n", stats.albumPhotos)
	fmt.Println("========================================")
}
