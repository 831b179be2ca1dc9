package db

import (
	"fmt"
	"time"

	"github.com/wekeepgrowing/memberchat/internal/config"
	"github.com/wekeepgrowing/memberchat/pkg/messaging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infrastructure 인프라스트럭처 구조체
type Infrastructure struct {
	DB        *gorm.DB
	Publisher messaging.Publisher
	logger    *zap.Logger
}

// NewInfrastructure 인프라스트럭처 초기화
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger
	infrastructure := &Infrastructure{logger: logger}

	// 데이터베이스 연결 설정
	dbConfig := Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Name:            cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		SSLMode:         cfg.Database.SSLMode,
	}

	// 데이터베이스 연결
	var err error
	infrastructure.DB, err = NewPostgresDB(dbConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	// 스키마 마이그레이션
	if err := AutoMigrate(infrastructure.DB); err != nil {
		return nil, fmt.Errorf("스키마 마이그레이션 실패: %w", err)
	}

	// Redis 발행자 초기화 (선택 사항: 주소가 비어 있으면 비활성화)
	if cfg.Redis.Host != "" {
		addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		infrastructure.Publisher, err = messaging.NewRedisPublisher(addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("Redis 연결 실패: %w", err)
		}
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", "PostgreSQL"),
		zap.Bool("messaging", infrastructure.Publisher != nil),
	)

	return infrastructure, nil
}

// Close 모든 연결 종료
func (i *Infrastructure) Close() error {
	// DB 연결 종료
	sqlDB, err := i.DB.DB()
	if err != nil {
		return fmt.Errorf("DB 인스턴스 획득 실패: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("데이터베이스 연결 종료 실패: %w", err)
	}

	// Redis 연결 종료
	if i.Publisher != nil {
		if err := i.Publisher.Close(); err != nil {
			return fmt.Errorf("Redis 연결 종료 실패: %w", err)
		}
	}

	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
