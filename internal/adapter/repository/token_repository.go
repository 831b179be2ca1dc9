package repository

import (
	"context"
	"errors"

	"github.com/wekeepgrowing/memberchat/internal/adapter/mapper"
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepositoryImpl struct {
	db *gorm.DB
}

// NewTokenRepository 토큰 저장소 구현체 생성
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// CreateIfAbsent 회원의 토큰이 없을 때만 삽입합니다.
// member_id 유니크 제약에 대한 ON CONFLICT DO NOTHING이므로
// "조회 후 없으면 생성" 시퀀스의 경쟁 창이 존재하지 않습니다.
// 같은 회원에 대한 동시 호출 중 정확히 하나만 행을 만듭니다.
func (r *TokenRepositoryImpl) CreateIfAbsent(ctx context.Context, token *entity.Token) (bool, error) {
	tokenModel := mapper.TokenToModel(token)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "member_id"}},
			DoNothing: true,
		}).
		Create(tokenModel)

	if result.Error != nil {
		// member_id 충돌은 DO NOTHING으로 흡수되므로 여기 도달하는
		// 유니크 제약 위반은 key 컬럼 충돌뿐입니다.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, repository.ErrDuplicateTokenKey
		}
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		// 다른 호출자가 먼저 삽입함
		return false, nil
	}

	token.ID = tokenModel.ID
	token.CreatedAt = tokenModel.CreatedAt
	return true, nil
}

// FindByMemberID 회원의 토큰 조회.
// 유니크 제약이 있으므로 두 개 이상 발견되는 것은 불변식 위반이며
// 조용히 복구하지 않고 ErrTokenInvariant로 크게 실패합니다.
func (r *TokenRepositoryImpl) FindByMemberID(ctx context.Context, memberID uint) (*entity.Token, error) {
	var tokenModels []model.TokenModel

	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Limit(2).
		Find(&tokenModels).Error; err != nil {
		return nil, err
	}

	switch len(tokenModels) {
	case 0:
		return nil, nil
	case 1:
		return mapper.TokenFromModel(&tokenModels[0]), nil
	default:
		return nil, repository.ErrTokenInvariant
	}
}

// FindByKey 키 값으로 토큰 조회
func (r *TokenRepositoryImpl) FindByKey(ctx context.Context, key string) (*entity.Token, error) {
	var tokenModel model.TokenModel

	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.TokenFromModel(&tokenModel), nil
}
