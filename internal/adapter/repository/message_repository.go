package repository

import (
	"context"
	"errors"

	"github.com/wekeepgrowing/memberchat/internal/adapter/mapper"
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db *gorm.DB
}

// NewMessageRepository 메시지 저장소 구현체 생성
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

// Append 메시지 저장. CreatedAt은 삽입 시점에 할당됩니다.
func (r *MessageRepositoryImpl) Append(ctx context.Context, message *entity.Message) error {
	messageModel := mapper.MessageToModel(message)

	if err := r.db.WithContext(ctx).Create(messageModel).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return repository.ErrAuthorNotFound
		}
		return err
	}

	message.ID = messageModel.ID
	message.CreatedAt = messageModel.CreatedAt
	return nil
}

// RecentWindow 최근 limit개의 메시지를 시간 오름차순으로 반환합니다.
// (created_at, id) 내림차순으로 limit개를 한 번에 가져온 뒤 메모리에서
// 뒤집습니다. 전체 카운트 후 오프셋 방식은 카운트와 조회 사이에 끼어든
// 삽입으로 창이 밀리는 문제가 있어 사용하지 않습니다.
func (r *MessageRepositoryImpl) RecentWindow(ctx context.Context, limit int) ([]*entity.Message, error) {
	var messageModels []model.MessageModel

	if err := r.db.WithContext(ctx).
		Preload("Member").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, err
	}

	// 내림차순 조회 결과를 시간 오름차순으로 뒤집기
	for i, j := 0, len(messageModels)-1; i < j; i, j = i+1, j-1 {
		messageModels[i], messageModels[j] = messageModels[j], messageModels[i]
	}

	return mapper.MessagesFromModels(messageModels), nil
}
