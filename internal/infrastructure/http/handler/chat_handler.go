package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/memberchat/internal/usecase"
	"github.com/wekeepgrowing/memberchat/internal/usecase/interfaces"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
	"go.uber.org/zap"
)

// ChatHandler 채팅 HTTP 핸들러
type ChatHandler struct {
	chatUseCase interfaces.ChatUseCase
	logger      *zap.Logger
}

// NewChatHandler 새 채팅 핸들러 생성
func NewChatHandler(chatUseCase interfaces.ChatUseCase, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		logger:      logger,
	}
}

// List 최근 메시지 조회 핸들러
// GET /api/v1/chat/messages
func (h *ChatHandler) List(c echo.Context) error {
	messages, err := h.chatUseCase.RecentMessages(c.Request().Context())
	if err != nil {
		errs.LogError(h.logger, err, "최근 메시지 조회 실패")
		return errs.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, toMessageResponses(messages))
}

// Post 메시지 작성 핸들러
// POST /api/v1/chat/messages
func (h *ChatHandler) Post(c echo.Context) error {
	member, ok := c.Get(middleware.MemberKey).(*entity.Member)
	if !ok || member == nil {
		return errs.ToHTTPError(usecase.ErrMissingToken)
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	message, err := h.chatUseCase.PostMessage(c.Request().Context(), member.ID, req.Content)
	if err != nil {
		if errs.CodeOf(err) == errs.ErrInternal {
			errs.LogError(h.logger, err, "메시지 작성 실패")
		}
		return errs.ToHTTPError(err)
	}

	messagesPosted.Inc()

	// 작성 직후 응답에도 작성자 정보를 포함합니다
	message.Member = member

	return c.JSON(http.StatusCreated, toMessageResponse(message))
}
