package model

import (
	"time"
)

// AuditLogModel 감사 로그 데이터베이스 모델
type AuditLogModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID *uint  `gorm:"index" json:"member_id,omitempty"`     // 회원 ID (선택 사항)
	Type     string `gorm:"size:50;not null;index" json:"type"`   // 로그 유형
	Content  string `gorm:"type:text" json:"content"`             // JSON 형식 콘텐츠

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 테이블 이름 지정
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
