package dto

// RegisterParams 회원가입 파라미터
type RegisterParams struct {
	Username  string
	Password  string
	IP        string
	UserAgent string
}

// LoginParams 로그인 파라미터
type LoginParams struct {
	Username  string
	Password  string
	IP        string
	UserAgent string
}
