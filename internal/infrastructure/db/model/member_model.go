package model

import (
	"time"
)

// MemberModel 회원 데이터베이스 모델.
// username의 유니크 제약이 중복 가입 경쟁의 최종 방어선입니다.
// 애플리케이션의 사전 조회는 친절한 에러 메시지를 위한 것일 뿐입니다.
type MemberModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Password string `gorm:"size:250;not null" json:"-"` // 해싱된 비밀번호
	Salt     string `gorm:"size:250;not null" json:"-"`

	// 메타데이터 필드
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 관계 필드 (회원 삭제 시 토큰과 메시지가 함께 삭제됨)
	Tokens   []TokenModel   `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Messages []MessageModel `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블 이름 지정
func (MemberModel) TableName() string {
	return "members"
}
