package handler

import (
	"time"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
)

// RegisterRequest 회원가입 요청 본문
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginRequest 로그인 요청 본문
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// PostMessageRequest 메시지 작성 요청 본문
type PostMessageRequest struct {
	Content string `json:"content" form:"content"`
}

// MemberResponse 회원 공개 표현. 비밀번호 관련 필드는 절대 포함하지 않습니다.
type MemberResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenMemberResponse 토큰 발급 응답 (회원가입/로그인 공용)
type TokenMemberResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}

// MessageResponse 메시지 표현. 작성자는 공개 표현으로 포함됩니다.
type MessageResponse struct {
	ID        uint            `json:"id"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Member    *MemberResponse `json:"member,omitempty"`
}

// toMemberResponse 엔티티를 공개 표현으로 변환
func toMemberResponse(member *entity.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		Username:  member.Username,
		CreatedAt: member.CreatedAt,
	}
}

// toMessageResponse 엔티티를 응답 표현으로 변환
func toMessageResponse(message *entity.Message) MessageResponse {
	resp := MessageResponse{
		ID:        message.ID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
	if message.Member != nil {
		member := toMemberResponse(message.Member)
		resp.Member = &member
	}
	return resp
}

// toMessageResponses 엔티티 목록을 응답 표현 목록으로 변환
func toMessageResponses(messages []*entity.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toMessageResponse(message))
	}
	return responses
}
