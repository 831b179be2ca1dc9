package mapper

import (
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"
)

// MessageToModel 메시지 엔티티를 DB 모델로 변환
func MessageToModel(message *entity.Message) *model.MessageModel {
	if message == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        message.ID,
		MemberID:  message.MemberID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

// MessageFromModel DB 모델을 메시지 엔티티로 변환
func MessageFromModel(m *model.MessageModel) *entity.Message {
	if m == nil {
		return nil
	}

	message := &entity.Message{
		ID:        m.ID,
		MemberID:  m.MemberID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}

	// 작성자가 함께 로드된 경우에만 매핑
	if m.Member.ID != 0 {
		message.Member = &entity.Member{
			ID:        m.Member.ID,
			Username:  m.Member.Username,
			CreatedAt: m.Member.CreatedAt,
		}
	}

	return message
}

// MessagesFromModels DB 모델 슬라이스를 메시지 엔티티 슬라이스로 변환
func MessagesFromModels(models []model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, len(models))
	for i := range models {
		messages[i] = MessageFromModel(&models[i])
	}
	return messages
}
