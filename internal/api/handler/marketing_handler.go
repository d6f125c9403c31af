package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/infrastructure/scheduler"
	"github.com/manicuristapro/salon-system/internal/pkg/metrics"
)

// BirthdayDigests exposes the latest birthday digest and runs one on demand.
type BirthdayDigests interface {
	Latest() *scheduler.Digest
	RunOnce(ctx context.Context) (*scheduler.Digest, error)
}

// MarketingHandler serves generated client messages and the assistant chat.
type MarketingHandler struct {
	service ports.MarketingService
	digests BirthdayDigests
}

func NewMarketingHandler(service ports.MarketingService, digests BirthdayDigests) *MarketingHandler {
	return &MarketingHandler{service: service, digests: digests}
}

type assistantRequest struct {
	History []ports.ChatMessage `json:"history"`
}

// Message handles POST /v1/marketing/messages.
//
// @Summary      Generate a reminder, promotion or birthday message for a client
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      ports.MessageRequest  true  "Message kind and client"
// @Success      200   {object}  ports.GeneratedText
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/marketing/messages [post]
func (h *MarketingHandler) Message(c echo.Context) error {
	var req ports.MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	out, err := h.service.GenerateMessage(c.Request().Context(), req)
	if err != nil {
		return err
	}
	metrics.MarketingMessagesTotal.WithLabelValues(string(req.Kind), strconv.FormatBool(out.Fallback)).Inc()
	return c.JSON(http.StatusOK, out)
}

// Assistant handles POST /v1/marketing/assistant.
//
// @Summary      Ask the salon assistant, given the conversation so far
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      assistantRequest  true  "Conversation, last message from the user"
// @Success      200   {object}  ports.GeneratedText
// @Failure      422   {object}  map[string]string
// @Router       /v1/marketing/assistant [post]
func (h *MarketingHandler) Assistant(c echo.Context) error {
	var req assistantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	out, err := h.service.Ask(c.Request().Context(), req.History)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// BirthdayDigest handles GET /v1/marketing/birthday-digest. When no scheduled
// run has happened yet, one is run inline.
//
// @Summary      Birthday messages prepared for this week
// @Tags         marketing
// @Produce      json
// @Success      200  {object}  scheduler.Digest
// @Router       /v1/marketing/birthday-digest [get]
func (h *MarketingHandler) BirthdayDigest(c echo.Context) error {
	if d := h.digests.Latest(); d != nil {
		return c.JSON(http.StatusOK, d)
	}
	return h.RunBirthdayDigest(c)
}

// RunBirthdayDigest handles POST /v1/marketing/birthday-digest.
//
// @Summary      Rebuild the birthday digest now
// @Tags         marketing
// @Produce      json
// @Success      200  {object}  scheduler.Digest
// @Router       /v1/marketing/birthday-digest [post]
func (h *MarketingHandler) RunBirthdayDigest(c echo.Context) error {
	d, err := h.digests.RunOnce(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
