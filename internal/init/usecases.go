package init

import (
	"github.com/wekeepgrowing/memberchat/internal/config"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/usecase"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	"github.com/wekeepgrowing/memberchat/pkg/messaging"
	"go.uber.org/zap"
)

// UseCases 애플리케이션의 모든 유스케이스 컨테이너
type UseCases struct {
	AuthUseCase     interfaces.AuthUseCase
	TokenUseCase    interfaces.TokenUseCase
	ChatUseCase     interfaces.ChatUseCase
	AuditLogUseCase interfaces.AuditLogUseCase
}

// NewUseCases 모든 유스케이스 인스턴스 생성 및 초기화
func NewUseCases(
	cfg *config.Config,
	repos *repository.Repositories,
	publisher messaging.Publisher,
	logger *zap.Logger,
) *UseCases {
	useCases := &UseCases{}

	// 1. 먼저 하위 유스케이스 초기화

	// 감사 로그 유스케이스 초기화
	useCases.AuditLogUseCase = usecase.NewAuditLogUseCase(
		logger,
		repos.AuditLog,
	)

	// 토큰 유스케이스 초기화
	useCases.TokenUseCase = usecase.NewTokenUseCase(
		logger,
		repos.Token,
		repos.Member,
	)

	// 2. 상위 유스케이스 초기화

	// 인증 유스케이스 초기화
	useCases.AuthUseCase = usecase.NewAuthUseCase(
		logger,
		usecase.AuthConfig{
			PasswordMinLength: cfg.Auth.PasswordMinLength,
		},
		repos.Member,
		useCases.TokenUseCase,
		useCases.AuditLogUseCase,
	)

	// 채팅 유스케이스 초기화
	useCases.ChatUseCase = usecase.NewChatUseCase(
		logger,
		usecase.ChatConfig{
			RecentWindow:     cfg.Chat.RecentWindow,
			MaxMessageLength: cfg.Chat.MaxMessageLength,
		},
		repos.Message,
		publisher,
	)

	return useCases
}
