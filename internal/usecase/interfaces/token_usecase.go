package interfaces

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// TokenUseCase 토큰 유스케이스 인터페이스
type TokenUseCase interface {
	// IssueOrGet 회원의 토큰을 반환하며 없으면 발급합니다. 멱등 연산으로,
	// 같은 회원에 대한 동시 호출은 모두 같은 키를 관찰합니다.
	IssueOrGet(ctx context.Context, memberID uint) (*entity.Token, error)

	// Resolve 원시 키를 회원으로 해석합니다. 형식이 맞지 않거나 저장된
	// 토큰과 일치하지 않으면 (nil, nil)을 반환합니다.
	Resolve(ctx context.Context, rawKey string) (*entity.Member, error)
}
