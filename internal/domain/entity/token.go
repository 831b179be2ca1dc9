package entity

import (
	"time"
)

// 토큰 키 형식: crypto/rand 20바이트를 hex 인코딩한 고정 40자 문자열
const TokenKeyLength = 40

// Token 회원 인증 토큰 도메인 엔티티.
// 회원당 최대 하나의 토큰만 존재하며 이 불변식은 저장소의
// member_id 유니크 제약으로 보장됩니다.
type Token struct {
	ID        uint
	MemberID  uint
	Key       string // 불투명 랜덤 키 (생성 후 불변)
	CreatedAt time.Time
}

// NewToken 새 토큰 생성
func NewToken(memberID uint, key string) *Token {
	return &Token{
		MemberID: memberID,
		Key:      key,
	}
}

// IsWellFormedKey는 문자열이 토큰 키 형식(소문자 hex 40자)인지 확인합니다.
// 저장소 조회 전에 형태 검사만 수행하며 키 내용에 따라 달라지는 분기는 없습니다.
func IsWellFormedKey(key string) bool {
	if len(key) != TokenKeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
