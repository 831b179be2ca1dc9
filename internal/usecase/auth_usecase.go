package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/usecase/dto"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
	"go.uber.org/zap"
)

// 사용자 이름/비밀번호 길이 제한
const (
	maxUsernameLength = 150
	maxPasswordLength = 128
)

// AuthConfig 인증 관련 설정
type AuthConfig struct {
	PasswordMinLength int // 비밀번호 최소 길이
}

// AuthUseCase 인증 유스케이스 구현체
type AuthUseCase struct {
	logger           *zap.Logger
	config           AuthConfig
	memberRepository repository.MemberRepository
	tokenUseCase     interfaces.TokenUseCase
	auditUseCase     interfaces.AuditLogUseCase
}

// NewAuthUseCase 새 인증 유스케이스 생성
func NewAuthUseCase(
	logger *zap.Logger,
	config AuthConfig,
	memberRepo repository.MemberRepository,
	tokenUC interfaces.TokenUseCase,
	auditUC interfaces.AuditLogUseCase,
) interfaces.AuthUseCase {
	return &AuthUseCase{
		logger:           logger,
		config:           config,
		memberRepository: memberRepo,
		tokenUseCase:     tokenUC,
		auditUseCase:     auditUC,
	}
}

// Register 회원가입 후 토큰 발급
func (uc *AuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*entity.Member, *entity.Token, error) {
	// 1. 입력 검증
	if err := validateRegisterParams(params, uc.config.PasswordMinLength); err != nil {
		return nil, nil, err
	}

	// 2. 이미 존재하는 사용자 이름인지 확인.
	// 친절한 에러를 위한 사전 조회일 뿐이며 실제 중복 방지는
	// 저장소의 유니크 제약이 담당합니다 (동시 가입 경쟁 포함).
	existing, err := uc.memberRepository.FindByUsername(ctx, params.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("사용자 이름 중복 확인 실패: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrDuplicateUsername
	}

	// 3. 비밀번호 해싱
	hashedPassword, salt, err := HashPassword(params.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("비밀번호 해싱 실패: %w", err)
	}

	// 4. 회원 생성
	member, err := entity.NewMember(params.Username, hashedPassword, salt)
	if err != nil {
		return nil, nil, errs.NewAppError(errs.ErrInvalidArgument, err.Error(), err)
	}

	if err := uc.memberRepository.Create(ctx, member); err != nil {
		// 사전 조회를 통과한 동시 가입의 패자는 여기서 걸러집니다
		if errs.Is(err, repository.ErrDuplicateUsername) {
			return nil, nil, ErrDuplicateUsername
		}
		return nil, nil, fmt.Errorf("회원 생성 실패: %w", err)
	}

	// 5. 토큰 발급
	token, err := uc.tokenUseCase.IssueOrGet(ctx, member.ID)
	if err != nil {
		return nil, nil, err
	}

	// 6. 감사 로그 기록
	uc.audit(entity.AuditLogRegister, member.ID, map[string]interface{}{
		"username":   member.Username,
		"ip":         params.IP,
		"user_agent": params.UserAgent,
	})

	return member, token, nil
}

// Login 자격 증명 검증 후 토큰 반환 (없으면 발급)
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*entity.Member, *entity.Token, error) {
	if params.Username == "" || params.Password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	// 1. 회원 조회
	member, err := uc.memberRepository.FindByUsername(ctx, params.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	if member == nil {
		// 외부에는 비밀번호 불일치와 동일한 에러, 내부 기록은 구분
		uc.audit(entity.AuditLogLoginUnknownUser, 0, map[string]interface{}{
			"username": params.Username,
			"ip":       params.IP,
		})
		return nil, nil, ErrInvalidCredentials
	}

	// 2. 비밀번호 검증
	if err := VerifyPassword(member.Password, params.Password, member.Salt); err != nil {
		uc.audit(entity.AuditLogLoginBadPassword, member.ID, map[string]interface{}{
			"username": params.Username,
			"ip":       params.IP,
		})
		return nil, nil, ErrInvalidCredentials
	}

	// 3. 토큰 조회 또는 발급
	token, err := uc.tokenUseCase.IssueOrGet(ctx, member.ID)
	if err != nil {
		return nil, nil, err
	}

	// 4. 감사 로그 기록
	uc.audit(entity.AuditLogLogin, member.ID, map[string]interface{}{
		"username":   member.Username,
		"ip":         params.IP,
		"user_agent": params.UserAgent,
	})

	return member, token, nil
}

// audit 감사 로그를 비동기로 기록합니다. 실패해도 요청 흐름을 막지 않습니다.
func (uc *AuthUseCase) audit(logType entity.AuditLogType, memberID uint, content map[string]interface{}) {
	if uc.auditUseCase == nil {
		return
	}

	var idRef *uint
	if memberID != 0 {
		idRef = &memberID
	}

	go func() {
		bgCtx := context.Background()
		if err := uc.auditUseCase.AddLog(bgCtx, logType, content, idRef); err != nil {
			uc.logger.Error("감사 로그 기록 실패",
				zap.String("type", string(logType)),
				zap.Error(err),
			)
		}
	}()
}

// validateRegisterParams 회원가입 입력 검증
func validateRegisterParams(params dto.RegisterParams, passwordMinLength int) error {
	username := strings.TrimSpace(params.Username)
	if username == "" || username != params.Username {
		return errs.NewAppError(errs.ErrInvalidArgument, "username must not be empty or contain surrounding whitespace", nil)
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return errs.NewAppError(errs.ErrInvalidArgument, "username is too long", nil)
	}

	if params.Password == "" {
		return errs.NewAppError(errs.ErrInvalidArgument, "password must not be empty", nil)
	}
	if len(params.Password) < passwordMinLength {
		return errs.NewAppError(errs.ErrInvalidArgument, "password is too short", nil)
	}
	if len(params.Password) > maxPasswordLength {
		return errs.NewAppError(errs.ErrInvalidArgument, "password is too long", nil)
	}

	return nil
}
