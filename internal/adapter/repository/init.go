package repository

import (
	domainrepo "github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"gorm.io/gorm"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(database *gorm.DB) *domainrepo.Repositories {
	// 회원 레포지토리
	memberRepo := NewMemberRepository(database)

	// 토큰 레포지토리
	tokenRepo := NewTokenRepository(database)

	// 메시지 레포지토리
	messageRepo := NewMessageRepository(database)

	// 감사 로그 레포지토리
	auditLogRepo := NewAuditLogRepository(database)

	// 레포지토리 컬렉션 생성 및 반환
	return domainrepo.NewRepositories(
		memberRepo,
		tokenRepo,
		messageRepo,
		auditLogRepo,
	)
}
