package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/memberchat/internal/usecase"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
	"go.uber.org/zap"
)

// 컨텍스트 키 상수
const (
	MemberIDKey = "member_id"
	MemberKey   = "member"
)

// Authorization 헤더의 인증 스킴. 대소문자를 구분하며
// "Token"과 키 사이에는 공백 하나만 허용합니다.
const authScheme = "Token "

// TokenAuthMiddleware는 토큰 인증을 처리하는 미들웨어입니다.
// 키 해석과 같은 비즈니스 로직은 TokenUseCase에 위임합니다.
type TokenAuthMiddleware struct {
	tokenUseCase interfaces.TokenUseCase
	logger       *zap.Logger
}

// NewTokenAuthMiddleware는 새로운 토큰 인증 미들웨어를 생성합니다.
func NewTokenAuthMiddleware(tokenUseCase interfaces.TokenUseCase, logger *zap.Logger) *TokenAuthMiddleware {
	return &TokenAuthMiddleware{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// Handle는 HTTP 요청에서 토큰 키를 추출하고 해석하는 핸들러 함수를 반환합니다.
func (m *TokenAuthMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 1. 요청 헤더에서 키 추출
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, authScheme) {
				return errs.ToHTTPError(usecase.ErrMissingToken)
			}
			rawKey := authHeader[len(authScheme):]

			// 2. 토큰 유스케이스를 통해 키 해석
			member, err := m.tokenUseCase.Resolve(c.Request().Context(), rawKey)
			if err != nil {
				errs.LogError(m.logger, err, "토큰 해석 실패")
				return errs.ToHTTPError(err)
			}
			if member == nil {
				m.logger.Info("인증 실패",
					zap.String("ip", c.RealIP()),
					zap.String("path", c.Request().URL.Path),
				)
				return errs.ToHTTPError(usecase.ErrInvalidToken)
			}

			// 3. 검증된 회원 정보를 컨텍스트에 저장
			c.Set(MemberIDKey, member.ID)
			c.Set(MemberKey, member)

			// 다음 핸들러 호출
			return next(c)
		}
	}
}
