package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HelloResponse 서비스 동작 확인용 응답
type HelloResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Hello 인증 없이 접근 가능한 동작 확인 핸들러
// GET /api/v1/hello
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, HelloResponse{
		Message:   "Hello!",
		Timestamp: time.Now().UTC(),
	})
}
