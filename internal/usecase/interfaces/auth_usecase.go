package interfaces

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/usecase/dto"
)

// AuthUseCase 인증 유스케이스 인터페이스
type AuthUseCase interface {
	// Register 회원가입 후 토큰 발급.
	// 중복 사용자 이름이면 usecase.ErrDuplicateUsername 반환.
	Register(ctx context.Context, params dto.RegisterParams) (*entity.Member, *entity.Token, error)

	// Login 자격 증명 검증 후 토큰 발급(없으면 생성).
	// 어떤 형태의 불일치든 usecase.ErrInvalidCredentials 반환.
	Login(ctx context.Context, params dto.LoginParams) (*entity.Member, *entity.Token, error)
}
