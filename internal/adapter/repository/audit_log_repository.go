package repository

import (
	"context"
	"encoding/json"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository 감사 로그 레포지토리 구현체 생성
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

// 도메인 엔티티를 DB 모델로 변환
func toAuditLogModel(log *entity.AuditLog) (*model.AuditLogModel, error) {
	content, err := json.Marshal(log.Content)
	if err != nil {
		return nil, err
	}

	return &model.AuditLogModel{
		ID:        log.ID,
		MemberID:  log.MemberID,
		Type:      string(log.Type),
		Content:   string(content),
		CreatedAt: log.CreatedAt,
	}, nil
}

// DB 모델을 도메인 엔티티로 변환
func toAuditLogEntity(m *model.AuditLogModel) *entity.AuditLog {
	var content map[string]interface{}
	// 콘텐츠 파싱 실패는 조회를 막지 않음
	_ = json.Unmarshal([]byte(m.Content), &content)

	return &entity.AuditLog{
		ID:        m.ID,
		MemberID:  m.MemberID,
		Type:      entity.AuditLogType(m.Type),
		Content:   content,
		CreatedAt: m.CreatedAt,
	}
}

// Create 감사 로그 저장
func (r *AuditLogRepositoryImpl) Create(ctx context.Context, log *entity.AuditLog) error {
	logModel, err := toAuditLogModel(log)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(logModel).Error; err != nil {
		return err
	}

	log.ID = logModel.ID
	log.CreatedAt = logModel.CreatedAt
	return nil
}

// FindByMemberID 특정 회원의 감사 로그 조회 (최신순)
func (r *AuditLogRepositoryImpl) FindByMemberID(ctx context.Context, memberID uint, limit int) ([]*entity.AuditLog, error) {
	var logModels []model.AuditLogModel

	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.AuditLog, len(logModels))
	for i := range logModels {
		logs[i] = toAuditLogEntity(&logModels[i])
	}
	return logs, nil
}
