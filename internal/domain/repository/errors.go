package repository

import "errors"

// 저장소 계약 에러. 구현체는 드라이버별 에러를 이 값들로 변환해 반환합니다.
var (
	// ErrDuplicateUsername username 유니크 제약 위반
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateTokenKey tokens.key 유니크 제약 위반 (충돌 시 새 키로 재시도 대상)
	ErrDuplicateTokenKey = errors.New("token key already exists")

	// ErrTokenInvariant 회원당 토큰이 둘 이상 발견됨.
	// 발급 경로의 원자성 보장이 깨졌음을 의미하므로 조용히 복구하지 않습니다.
	ErrTokenInvariant = errors.New("multiple tokens found for one member")

	// ErrAuthorNotFound 메시지 작성자 FK 위반
	ErrAuthorNotFound = errors.New("message author not found")
)
