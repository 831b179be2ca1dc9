package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	Member   MemberRepository
	Token    TokenRepository
	Message  MessageRepository
	AuditLog AuditLogRepository
}

// NewRepositories 모든 레포지토리를 포함하는 컬렉션 생성
func NewRepositories(
	memberRepo MemberRepository,
	tokenRepo TokenRepository,
	messageRepo MessageRepository,
	auditLogRepo AuditLogRepository,
) *Repositories {
	return &Repositories{
		Member:   memberRepo,
		Token:    tokenRepo,
		Message:  messageRepo,
		AuditLog: auditLogRepo,
	}
}
