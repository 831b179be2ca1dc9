package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
	"github.com/wekeepgrowing/memberchat/pkg/messaging"
	"go.uber.org/zap"
)

// 새 메시지가 발행되는 Redis 채널
const messageChannel = "chat.messages"

// ChatConfig 채팅 관련 설정.
// 최근 창 크기는 하드코딩하지 않고 설정으로 받아 작은 크기로도
// 테스트할 수 있게 합니다.
type ChatConfig struct {
	RecentWindow     int // 최근 메시지 창 크기
	MaxMessageLength int // 메시지 최대 길이 (룬 기준)
}

// ChatUseCase 채팅 유스케이스 구현체
type ChatUseCase struct {
	logger            *zap.Logger
	config            ChatConfig
	messageRepository repository.MessageRepository
	publisher         messaging.Publisher // nil이면 발행 생략
}

// NewChatUseCase 새 채팅 유스케이스 생성
func NewChatUseCase(
	logger *zap.Logger,
	config ChatConfig,
	messageRepo repository.MessageRepository,
	publisher messaging.Publisher,
) interfaces.ChatUseCase {
	return &ChatUseCase{
		logger:            logger,
		config:            config,
		messageRepository: messageRepo,
		publisher:         publisher,
	}
}

// PostMessage 메시지 작성
func (uc *ChatUseCase) PostMessage(ctx context.Context, memberID uint, content string) (*entity.Message, error) {
	// 1. 내용 검증
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(trimmed) > uc.config.MaxMessageLength {
		return nil, ErrContentTooLong
	}

	// 2. 저장. CreatedAt은 저장 시점에 할당됩니다.
	message := entity.NewMessage(memberID, trimmed)
	if err := uc.messageRepository.Append(ctx, message); err != nil {
		if errs.Is(err, repository.ErrAuthorNotFound) {
			// 유효한 토큰으로 인증된 요청에서는 발생할 수 없는 상태
			errs.LogError(uc.logger, err, "메시지 작성자 불변식 위반",
				zap.Uint("member_id", memberID),
			)
			return nil, errs.NewAppError(errs.ErrInternal, "internal server error", err)
		}
		return nil, fmt.Errorf("메시지 저장 실패: %w", err)
	}

	// 3. 저장된 메시지를 외부 소비자에게 발행 (비동기, 실패 무시 아님: 로그)
	if uc.publisher != nil {
		event := map[string]interface{}{
			"id":         message.ID,
			"member_id":  message.MemberID,
			"content":    message.Content,
			"created_at": message.CreatedAt,
		}
		go func() {
			bgCtx := context.Background()
			if err := uc.publisher.Publish(bgCtx, messageChannel, event); err != nil {
				uc.logger.Error("메시지 이벤트 발행 실패",
					zap.Uint("message_id", message.ID),
					zap.Error(err),
				)
			}
		}()
	}

	return message, nil
}

// RecentMessages 최근 메시지 창 조회 (시간 오름차순)
func (uc *ChatUseCase) RecentMessages(ctx context.Context) ([]*entity.Message, error) {
	messages, err := uc.messageRepository.RecentWindow(ctx, uc.config.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("최근 메시지 조회 실패: %w", err)
	}
	return messages, nil
}
