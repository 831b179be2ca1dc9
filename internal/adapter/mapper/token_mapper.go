package mapper

import (
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"
)

// TokenToModel 토큰 엔티티를 DB 모델로 변환
func TokenToModel(token *entity.Token) *model.TokenModel {
	if token == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        token.ID,
		MemberID:  token.MemberID,
		Key:       token.Key,
		CreatedAt: token.CreatedAt,
	}
}

// TokenFromModel DB 모델을 토큰 엔티티로 변환
func TokenFromModel(model *model.TokenModel) *entity.Token {
	if model == nil {
		return nil
	}

	return &entity.Token{
		ID:        model.ID,
		MemberID:  model.MemberID,
		Key:       model.Key,
		CreatedAt: model.CreatedAt,
	}
}
