package repository

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// TokenRepository 토큰 저장소 인터페이스
type TokenRepository interface {
	// CreateIfAbsent 해당 회원의 토큰이 없을 때만 삽입합니다.
	// member_id 유니크 제약에 대한 조건부 삽입(ON CONFLICT DO NOTHING)으로,
	// 동시 호출 중 정확히 하나만 created=true를 받습니다.
	// key 컬럼 유니크 제약 위반 시 ErrDuplicateTokenKey를 반환합니다.
	CreateIfAbsent(ctx context.Context, token *entity.Token) (created bool, err error)

	// FindByMemberID 회원의 토큰 조회. 없으면 (nil, nil).
	// 회원당 토큰이 둘 이상 발견되면 ErrTokenInvariant를 반환합니다.
	FindByMemberID(ctx context.Context, memberID uint) (*entity.Token, error)

	// FindByKey 키 값으로 토큰 조회. 없으면 (nil, nil)
	FindByKey(ctx context.Context, key string) (*entity.Token, error)
}
