package repository

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// AuditLogRepository 감사 로그 저장소 인터페이스
type AuditLogRepository interface {
	// Create 감사 로그 저장
	Create(ctx context.Context, log *entity.AuditLog) error

	// FindByMemberID 특정 회원의 감사 로그 조회 (최신순)
	FindByMemberID(ctx context.Context, memberID uint, limit int) ([]*entity.AuditLog, error)
}
