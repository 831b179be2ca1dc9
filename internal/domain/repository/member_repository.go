package repository

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// MemberRepository 회원 저장소 인터페이스
type MemberRepository interface {
	// FindByID ID로 회원 조회. 없으면 (nil, nil)
	FindByID(ctx context.Context, id uint) (*entity.Member, error)

	// FindByUsername 사용자 이름으로 회원 조회. 없으면 (nil, nil)
	FindByUsername(ctx context.Context, username string) (*entity.Member, error)

	// Create 새 회원 생성. username 유니크 제약 위반 시 ErrDuplicateUsername 반환
	Create(ctx context.Context, member *entity.Member) error
}
