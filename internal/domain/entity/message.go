package entity

import (
	"time"
)

// Message 그룹 채팅 메시지 도메인 엔티티.
// 메시지는 추가 전용이며 생성 후 수정/삭제되지 않습니다.
// 정렬은 (CreatedAt, ID) 복합 키 기준입니다. 시계 해상도로 인해
// CreatedAt이 같을 수 있으므로 ID(삽입 순서)로 타이브레이크합니다.
type Message struct {
	ID        uint
	MemberID  uint
	Content   string
	CreatedAt time.Time

	// 작성자 정보 (조회 시 함께 로드됨)
	Member *Member
}

// NewMessage 새 메시지 생성
func NewMessage(memberID uint, content string) *Message {
	return &Message{
		MemberID: memberID,
		Content:  content,
	}
}
