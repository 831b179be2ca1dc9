package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/memberchat/internal/usecase"
	"github.com/wekeepgrowing/memberchat/internal/usecase/dto"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
	"go.uber.org/zap"
)

// AuthHandler 인증 HTTP 핸들러
type AuthHandler struct {
	authUseCase interfaces.AuthUseCase
	logger      *zap.Logger
}

// NewAuthHandler 새 인증 핸들러 생성
func NewAuthHandler(authUseCase interfaces.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register 회원가입 핸들러
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, token, err := h.authUseCase.Register(c.Request().Context(), dto.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		// 중복 사용자 이름은 필드를 명시한 검증 에러로 응답합니다
		if errs.Is(err, usecase.ErrDuplicateUsername) {
			return c.JSON(http.StatusBadRequest, map[string][]string{
				"username": {usecase.ErrDuplicateUsername.Message()},
			})
		}
		errs.LogError(h.logger, err, "회원가입 실패")
		return errs.ToHTTPError(err)
	}

	membersRegistered.Inc()

	return c.JSON(http.StatusCreated, TokenMemberResponse{
		Token:  token.Key,
		Member: toMemberResponse(member),
	})
}

// Login 로그인 핸들러
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, token, err := h.authUseCase.Login(c.Request().Context(), dto.LoginParams{
		Username:  req.Username,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		if !errs.Is(err, usecase.ErrInvalidCredentials) {
			errs.LogError(h.logger, err, "로그인 실패")
		}
		return errs.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, TokenMemberResponse{
		Token:  token.Key,
		Member: toMemberResponse(member),
	})
}

// Me 인증된 회원 조회 핸들러
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	member, ok := c.Get(middleware.MemberKey).(*entity.Member)
	if !ok || member == nil {
		return errs.ToHTTPError(usecase.ErrMissingToken)
	}

	return c.JSON(http.StatusOK, toMemberResponse(member))
}
