package repository

import (
	"context"
	"errors"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db/model"

	"gorm.io/gorm"
)

type MemberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository 회원 레포지토리 구현체 생성
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

// 도메인 엔티티를 DB 모델로 변환
func toMemberModel(member *entity.Member) *model.MemberModel {
	return &model.MemberModel{
		ID:        member.ID,
		Username:  member.Username,
		Password:  member.Password,
		Salt:      member.Salt,
		CreatedAt: member.CreatedAt,
	}
}

// DB 모델을 도메인 엔티티로 변환
func toMemberEntity(model *model.MemberModel) *entity.Member {
	return &entity.Member{
		ID:        model.ID,
		Username:  model.Username,
		Password:  model.Password,
		Salt:      model.Salt,
		CreatedAt: model.CreatedAt,
	}
}

// FindByID ID로 회원 조회
func (r *MemberRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Member, error) {
	var memberModel model.MemberModel

	if err := r.db.WithContext(ctx).First(&memberModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // 회원을 찾지 못함
		}
		return nil, err
	}

	return toMemberEntity(&memberModel), nil
}

// FindByUsername 사용자 이름으로 회원 조회
func (r *MemberRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.Member, error) {
	var memberModel model.MemberModel

	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&memberModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMemberEntity(&memberModel), nil
}

// Create 새 회원 생성.
// 동시 중복 가입은 사전 조회가 아닌 username 유니크 제약이 막습니다.
func (r *MemberRepositoryImpl) Create(ctx context.Context, member *entity.Member) error {
	memberModel := toMemberModel(member)

	if err := r.db.WithContext(ctx).Create(memberModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateUsername
		}
		return err
	}

	// ID와 생성 시각이 DB에서 할당된 경우 엔티티에 반영
	member.ID = memberModel.ID
	member.CreatedAt = memberModel.CreatedAt
	return nil
}
