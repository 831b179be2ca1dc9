package entity

import (
	"errors"
	"time"
)

// Member 채팅 서비스 회원 도메인 엔티티
type Member struct {
	ID        uint
	Username  string
	Password  string // 해싱된 비밀번호 (평문은 이 계층에 절대 도달하지 않음)
	Salt      string
	CreatedAt time.Time
}

// NewMember 회원 생성 팩토리 함수
func NewMember(username, hashedPassword, salt string) (*Member, error) {
	if username == "" {
		return nil, errors.New("사용자 이름은 필수입니다")
	}

	if hashedPassword == "" || salt == "" {
		return nil, errors.New("비밀번호 해시와 솔트는 필수입니다")
	}

	return &Member{
		Username: username,
		Password: hashedPassword,
		Salt:     salt,
	}, nil
}
