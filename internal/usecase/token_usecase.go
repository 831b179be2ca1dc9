package usecase

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
	"go.uber.org/zap"
)

// 키 충돌 시 새 난수로 재시도하는 횟수. 160비트 키에서 충돌은 사실상
// 발생하지 않지만 발생하더라도 충돌한 값을 재사용하지 않습니다.
const issueAttempts = 2

// TokenUseCase 토큰 유스케이스 구현체
type TokenUseCase struct {
	logger           *zap.Logger
	tokenRepository  repository.TokenRepository
	memberRepository repository.MemberRepository
}

// NewTokenUseCase 새 토큰 유스케이스 생성
func NewTokenUseCase(
	logger *zap.Logger,
	tokenRepo repository.TokenRepository,
	memberRepo repository.MemberRepository,
) interfaces.TokenUseCase {
	return &TokenUseCase{
		logger:           logger,
		tokenRepository:  tokenRepo,
		memberRepository: memberRepo,
	}
}

// IssueOrGet 회원의 토큰을 반환하며 없으면 발급합니다.
// 조건부 삽입(member_id 유니크 제약 + ON CONFLICT DO NOTHING) 후
// 미삽입 시 재조회하는 패턴이므로, 같은 회원에 대한 N개의 동시 호출은
// 정확히 하나의 행을 만들고 모두 같은 키를 관찰합니다.
func (uc *TokenUseCase) IssueOrGet(ctx context.Context, memberID uint) (*entity.Token, error) {
	for attempt := 0; attempt < issueAttempts; attempt++ {
		// 매 시도마다 새 난수 키 생성
		key, err := GenerateTokenKey()
		if err != nil {
			return nil, fmt.Errorf("토큰 키 생성 실패: %w", err)
		}

		token := entity.NewToken(memberID, key)
		created, err := uc.tokenRepository.CreateIfAbsent(ctx, token)
		if err != nil {
			if errs.Is(err, repository.ErrDuplicateTokenKey) {
				// 키 충돌: 충돌한 값을 버리고 새 난수로 재시도
				uc.logger.Warn("토큰 키 충돌, 재시도",
					zap.Uint("member_id", memberID),
					zap.Int("attempt", attempt+1),
				)
				continue
			}
			return nil, fmt.Errorf("토큰 발급 실패: %w", err)
		}

		if created {
			uc.logger.Info("토큰 발급됨", zap.Uint("member_id", memberID))
			return token, nil
		}

		// 다른 호출자가 먼저 발급함: 저장된 토큰을 읽어 반환
		existing, err := uc.tokenRepository.FindByMemberID(ctx, memberID)
		if err != nil {
			if errs.Is(err, repository.ErrTokenInvariant) {
				// 회원당 토큰 하나 불변식 위반. 발급 경로의 원자성이
				// 깨졌다는 뜻이므로 조용히 복구하지 않고 크게 실패합니다.
				errs.LogError(uc.logger, err, "토큰 불변식 위반 감지",
					zap.Uint("member_id", memberID),
				)
				return nil, errs.NewAppError(errs.ErrInternal, "internal server error", err)
			}
			return nil, fmt.Errorf("토큰 조회 실패: %w", err)
		}
		if existing != nil {
			return existing, nil
		}

		// 삽입 경쟁에서 졌는데 재조회도 비어 있음: 그 사이 회원이
		// 삭제된 극단적 경쟁. 한 번 더 시도합니다.
	}

	return nil, errs.NewAppError(errs.ErrInternal, "internal server error",
		fmt.Errorf("토큰 발급 재시도 초과: member_id=%d", memberID))
}

// Resolve 원시 키를 회원으로 해석합니다.
// 형태 검사를 통과하지 못한 입력은 저장소 조회 없이 nil을 반환하며,
// 그 외에는 키 일치 여부와 무관하게 동일한 조회 경로를 거칩니다.
func (uc *TokenUseCase) Resolve(ctx context.Context, rawKey string) (*entity.Member, error) {
	if !entity.IsWellFormedKey(rawKey) {
		return nil, nil
	}

	token, err := uc.tokenRepository.FindByKey(ctx, rawKey)
	if err != nil {
		return nil, fmt.Errorf("토큰 조회 실패: %w", err)
	}
	if token == nil {
		return nil, nil
	}

	member, err := uc.memberRepository.FindByID(ctx, token.MemberID)
	if err != nil {
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	if member == nil {
		// FK 제약상 도달할 수 없는 상태. 토큰 소유자가 사라졌다면
		// 기록을 남기고 해석 불가로 처리합니다.
		uc.logger.Error("토큰 소유 회원이 존재하지 않음",
			zap.Uint("token_id", token.ID),
			zap.Uint("member_id", token.MemberID),
		)
		return nil, nil
	}

	return member, nil
}
