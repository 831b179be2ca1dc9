package interfaces

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// AuditLogUseCase 감사 로그 유스케이스 인터페이스
type AuditLogUseCase interface {
	// AddLog 감사 로그 추가
	AddLog(ctx context.Context, logType entity.AuditLogType, content map[string]interface{}, memberID *uint) error

	// GetMemberLogs 특정 회원의 감사 로그 조회
	GetMemberLogs(ctx context.Context, memberID uint, limit int) ([]*entity.AuditLog, error)
}
