package usecase

import (
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
)

// 유스케이스 계층에서 상위로 전달되는 호출자 대면 에러.
// HTTP 계층은 이 에러들의 코드만으로 응답 형태를 결정합니다.
var (
	// ErrDuplicateUsername 중복된 사용자 이름 (검증 에러로 노출)
	ErrDuplicateUsername = errs.NewAppError(errs.ErrConflict, "a member with that username already exists", nil)

	// ErrInvalidCredentials 로그인 실패. 사용자 이름 없음/비밀번호 불일치를
	// 구분하지 않아 사용자 이름 열거를 방지합니다.
	ErrInvalidCredentials = errs.NewAppError(errs.ErrInvalidArgument, "invalid username or password", nil)

	// ErrMissingToken 인증 헤더 없음 또는 잘못된 스킴
	ErrMissingToken = errs.NewAppError(errs.ErrUnauthenticated, "authentication token is missing or invalid", nil)

	// ErrInvalidToken 형식은 맞지만 저장된 토큰과 일치하지 않음.
	// 외부 메시지는 ErrMissingToken과 동일해 어느 단계가 실패했는지 노출하지 않습니다.
	ErrInvalidToken = errs.NewAppError(errs.ErrUnauthenticated, "authentication token is missing or invalid", nil)

	// ErrEmptyContent 공백 제거 후 빈 메시지 내용
	ErrEmptyContent = errs.NewAppError(errs.ErrInvalidArgument, "message content must not be empty", nil)

	// ErrContentTooLong 메시지 내용 길이 초과
	ErrContentTooLong = errs.NewAppError(errs.ErrInvalidArgument, "message content exceeds the maximum length", nil)
)
