package entity

// AuditLogType 감사 로그 유형
type AuditLogType string

// 감사 로그 유형 정의
const (
	AuditLogRegister AuditLogType = "register"
	AuditLogLogin    AuditLogType = "login"
	// 로그인 실패는 외부에는 동일한 응답이지만 내부적으로는 구분해 기록합니다
	AuditLogLoginUnknownUser   AuditLogType = "login_unknown_user"
	AuditLogLoginBadPassword   AuditLogType = "login_bad_password"
	AuditLogTokenIssued        AuditLogType = "token_issued"
	AuditLogInvariantViolation AuditLogType = "invariant_violation"
)
