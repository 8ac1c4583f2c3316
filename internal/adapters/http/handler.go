package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soapsrc/ImposterGame/internal/app"
	"github.com/soapsrc/ImposterGame/internal/domain"
)

// Error bodies the game front-end relies on.
const (
	msgMissingSecretWord = "Secret word is required"
	msgMissingCredential = "API key not configured"
	msgUpstreamFailed    = "Cohere API request failed"
)

type Handler struct {
	svc *app.HintService
}

func NewHandler(svc *app.HintService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/api/generate-hint", h.GenerateHint)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GenerateHint(c echo.Context) error {
	// Read directly so a missing Content-Type does not change the outcome.
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return mapError(c, &domain.UnexpectedError{Err: err})
	}
	req, err := parseHintRequest(body)
	if err != nil {
		return mapError(c, &domain.UnexpectedError{Err: err})
	}

	raw, err := h.svc.GenerateHint(c.Request().Context(), req.SecretWord)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSONBlob(http.StatusOK, raw)
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrMissingSecretWord):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingSecretWord})
	case errors.Is(err, domain.ErrMissingCredential):
		slog.Error("cohere credential not configured", "request_id", requestID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgMissingCredential})
	case errors.As(err, &upstream):
		slog.Warn("upstream LLM failure", "request_id", requestID, "status", upstream.StatusCode)
		return c.JSON(upstream.StatusCode, ErrorResponse{Error: msgUpstreamFailed})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
