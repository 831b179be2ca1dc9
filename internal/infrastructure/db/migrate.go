package db

import (
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

// AutoMigrate 데이터베이스 스키마를 마이그레이션합니다.
// 유니크 제약(members.username, tokens.member_id, tokens.key)이
// 여기서 생성되며 서비스의 동시성 보장이 이 제약들에 의존합니다.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.MemberModel{},
		&model.TokenModel{},
		&model.MessageModel{},
		&model.AuditLogModel{},
	)
}
