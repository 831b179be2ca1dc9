package model

import (
	"time"
)

// MessageModel 채팅 메시지 데이터베이스 모델.
// 추가 전용 로그이며 UPDATE/DELETE 경로가 없습니다. 최근 창 조회가
// (created_at, id) 내림차순이므로 created_at에 인덱스를 둡니다.
type MessageModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID uint   `gorm:"not null;index" json:"member_id"`
	Content  string `gorm:"size:200;not null" json:"content"`

	// 메타데이터 필드
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// 관계 필드
	Member MemberModel `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// TableName 테이블 이름 지정
func (MessageModel) TableName() string {
	return "messages"
}
