package repository

import (
	"context"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// MessageRepository 메시지 저장소 인터페이스.
// 메시지 로그는 추가 전용이며 수정/삭제 연산은 제공하지 않습니다.
type MessageRepository interface {
	// Append 메시지 저장. CreatedAt은 저장 시점에 할당됩니다.
	// 작성자 FK 위반 시 ErrAuthorNotFound를 반환합니다.
	Append(ctx context.Context, message *entity.Message) error

	// RecentWindow 최근 limit개의 메시지를 시간 오름차순으로 반환합니다.
	// (created_at, id) 내림차순 limit 조회 후 메모리에서 뒤집는 단일 쿼리로,
	// count+offset 방식의 일관성 공백이 없습니다. 작성자 정보가 함께 로드됩니다.
	RecentWindow(ctx context.Context, limit int) ([]*entity.Message, error)
}
