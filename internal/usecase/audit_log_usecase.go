package usecase

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// AuditLogUseCase 감사 로그 유스케이스 구현체
type AuditLogUseCase struct {
	logger          *zap.Logger
	auditRepository repository.AuditLogRepository
}

// NewAuditLogUseCase 새 감사 로그 유스케이스 생성
func NewAuditLogUseCase(
	logger *zap.Logger,
	auditRepo repository.AuditLogRepository,
) interfaces.AuditLogUseCase {
	return &AuditLogUseCase{
		logger:          logger,
		auditRepository: auditRepo,
	}
}

// AddLog 감사 로그 추가
func (uc *AuditLogUseCase) AddLog(ctx context.Context, logType entity.AuditLogType, content map[string]interface{}, memberID *uint) error {
	// 새 감사 로그 엔티티 생성
	auditLog := entity.NewAuditLog(memberID, logType, content)

	// 로그 저장
	if err := uc.auditRepository.Create(ctx, auditLog); err != nil {
		uc.logger.Error("감사 로그 저장 실패",
			zap.String("type", string(logType)),
			zap.Any("content", content),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// GetMemberLogs 특정 회원의 감사 로그 조회
func (uc *AuditLogUseCase) GetMemberLogs(ctx context.Context, memberID uint, limit int) ([]*entity.AuditLog, error) {
	logs, err := uc.auditRepository.FindByMemberID(ctx, memberID, limit)
	if err != nil {
		uc.logger.Error("회원 감사 로그 조회 실패",
			zap.Uint("member_id", memberID),
			zap.Error(err),
		)
		return nil, err
	}

	return logs, nil
}
