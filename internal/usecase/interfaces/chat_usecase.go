package interfaces

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// ChatUseCase 채팅 유스케이스 인터페이스
type ChatUseCase interface {
	// PostMessage 메시지 작성. 내용이 비었거나 너무 길면 검증 에러 반환.
	PostMessage(ctx context.Context, memberID uint, content string) (*entity.Message, error)

	// RecentMessages 설정된 창 크기만큼의 최근 메시지를 시간 오름차순으로 반환.
	RecentMessages(ctx context.Context) ([]*entity.Message, error)
}
