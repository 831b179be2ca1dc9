package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/http/middleware"
)

// MockTokenUseCase is a mock implementation of interfaces.TokenUseCase
type MockTokenUseCase struct {
	mock.Mock
}

func (m *MockTokenUseCase) IssueOrGet(ctx context.Context, memberID uint) (*entity.Token, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Token), args.Error(1)
}

func (m *MockTokenUseCase) Resolve(ctx context.Context, rawKey string) (*entity.Member, error) {
	args := m.Called(ctx, rawKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func invokeAuth(t *testing.T, tokenUC *MockTokenUseCase, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	authMW := middleware.NewTokenAuthMiddleware(tokenUC, zap.NewNop())
	handler := authMW.Handle()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return rec, handler(c)
}

func TestTokenAuthMiddleware(t *testing.T) {
	validKey := strings.Repeat("ab", 20)

	t.Run("passes a valid token and stores the member in context", func(t *testing.T) {
		tokenUC := new(MockTokenUseCase)
		member := &entity.Member{ID: 1, Username: "alice"}
		tokenUC.On("Resolve", mock.Anything, validKey).Return(member, nil).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token "+validKey)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		authMW := middleware.NewTokenAuthMiddleware(tokenUC, zap.NewNop())
		var gotMember *entity.Member
		var gotID uint
		handler := authMW.Handle()(func(c echo.Context) error {
			gotMember, _ = c.Get(middleware.MemberKey).(*entity.Member)
			gotID, _ = c.Get(middleware.MemberIDKey).(uint)
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
		assert.Equal(t, member, gotMember)
		assert.Equal(t, uint(1), gotID)
		tokenUC.AssertExpectations(t)
	})

	t.Run("rejects requests without a usable scheme", func(t *testing.T) {
		headers := []string{
			"",                   // no header at all
			validKey,             // bare key without scheme
			"Bearer " + validKey, // wrong scheme
			"token " + validKey,  // scheme is case-sensitive
			"Token",              // scheme without key
		}

		for _, header := range headers {
			tokenUC := new(MockTokenUseCase)
			_, err := invokeAuth(t, tokenUC, header)

			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok, "header %q", header)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code, "header %q", header)
			tokenUC.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		}
	})

	t.Run("rejects a key with extra whitespace after the scheme", func(t *testing.T) {
		// "Token  <key>"의 나머지는 선행 공백 때문에 형태 검사에서 걸러집니다
		tokenUC := new(MockTokenUseCase)
		tokenUC.On("Resolve", mock.Anything, " "+validKey).Return(nil, nil).Once()

		_, err := invokeAuth(t, tokenUC, "Token  "+validKey)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		tokenUC.AssertExpectations(t)
	})

	t.Run("rejects an unrecognized key", func(t *testing.T) {
		tokenUC := new(MockTokenUseCase)
		tokenUC.On("Resolve", mock.Anything, validKey).Return(nil, nil).Once()

		_, err := invokeAuth(t, tokenUC, "Token "+validKey)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		tokenUC.AssertExpectations(t)
	})
}
