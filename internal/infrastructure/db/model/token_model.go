package model

import (
	"time"
)

// TokenModel 인증 토큰 데이터베이스 모델.
// member_id의 유니크 제약이 회원당 토큰 하나 불변식을 저장소 차원에서
// 강제합니다. 발급 경로는 이 제약에 대한 조건부 삽입으로 직렬화됩니다.
type TokenModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID uint   `gorm:"not null;uniqueIndex" json:"member_id"`
	Key      string `gorm:"size:40;not null;uniqueIndex" json:"-"` // 불투명 토큰 키

	// 메타데이터 필드
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블 이름 지정
func (TokenModel) TableName() string {
	return "tokens"
}
