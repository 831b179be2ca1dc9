package entity

import (
	"time"
)

// AuditLog 보안 추적을 위한 시스템 감사 이벤트를 저장합니다
type AuditLog struct {
	ID       uint
	MemberID *uint
	Type     AuditLogType
	Content  map[string]interface{}

	CreatedAt time.Time
}

// NewAuditLog 새 감사 로그 생성
func NewAuditLog(memberID *uint, logType AuditLogType, content map[string]interface{}) *AuditLog {
	return &AuditLog{
		MemberID: memberID,
		Type:     logType,
		Content:  content,
	}
}
