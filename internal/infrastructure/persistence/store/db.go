package store

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// Store 共享的数据库句柄
// 启动时打开一次,所有请求共用
type Store struct {
	DB *gorm.DB

	// Fresh 本次启动前books表不存在(首次创建存储),用于决定是否导入种子数据
	Fresh bool

	// Generation 存储实例标识,删除重建数据库后会变化
	Generation string
}

const generationKey = "generation"

// Open 打开数据库并迁移表结构
// 设计说明：
// 1. driver=sqlite（默认）：单文件数据库，只开一个连接，由连接池串行化写入
// 2. driver=mysql：连接池参数来自配置
// 3. 开发模式（server.mode=debug）打印SQL，其他模式静默
// 4. 迁移前检查books表是否存在，得到Fresh标记
func Open(cfg *config.Config) (*Store, error) {
	// 1. 选择驱动
	dialector, err := newDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	// 3. 连接数据库
	// TranslateError让驱动把唯一约束冲突统一转换为gorm.ErrDuplicatedKey
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	if cfg.Database.Driver == "mysql" {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	} else {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 6. 首次创建检测 + 自动迁移
	fresh := !db.Migrator().HasTable(&BookModel{})
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 7. 读取(或首次写入)存储标识
	generation, err := loadGeneration(db)
	if err != nil {
		return nil, fmt.Errorf("读取存储标识失败: %w", err)
	}

	slog.Info("database opened",
		"driver", driverName(cfg.Database),
		"fresh", fresh,
		"generation", generation,
	)

	return &Store{DB: db, Fresh: fresh, Generation: generation}, nil
}

// Close 关闭底层连接
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch driverName(cfg) {
	case "sqlite":
		return sqlite.Open(cfg.DSN()), nil
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

func driverName(cfg config.DatabaseConfig) string {
	if cfg.Driver == "" {
		return "sqlite"
	}
	return cfg.Driver
}

// autoMigrate 按依赖顺序建表(被引用的表在前)
// AutoMigrate只会建表、加字段和索引,不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PublisherModel{},
		&AuthorModel{},
		&BookModel{},
		&BookAuthorModel{},
		&MetaModel{},
	)
}

// loadGeneration 没有标识时写入一个新的uuid
// 并发启动时以先写入的为准
func loadGeneration(db *gorm.DB) (string, error) {
	row := MetaModel{Name: generationKey, Value: uuid.NewString()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return "", err
	}

	var stored MetaModel
	if err := db.Where("name = ?", generationKey).Take(&stored).Error; err != nil {
		return "", err
	}
	return stored.Value, nil
}
