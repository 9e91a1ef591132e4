// internal/transport/http/handlers.go
package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"mahalo-service/internal/events"
	"mahalo-service/internal/relay"
	"mahalo-service/pkg/models"
)

type Handler struct {
	contact *relay.ContactRelay
	order   *relay.OrderRelay
	popups  *events.Normalizer
}

func NewHandler(contact *relay.ContactRelay, order *relay.OrderRelay, popups *events.Normalizer) *Handler {
	return &Handler{contact: contact, order: order, popups: popups}
}

// SendContactEmail handles POST /v1/contact.
func (h *Handler) SendContactEmail(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		log.Printf("⚠️ [HTTP] Contact: invalid JSON body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Invalid request payload"))
	}

	result, err := h.contact.Send(c.Context(), msg)
	return writeResult(c, result, err)
}

// SendOrderEmail handles POST /v1/order.
func (h *Handler) SendOrderEmail(c *fiber.Ctx) error {
	var o models.CookieOrder
	if err := c.BodyParser(&o); err != nil {
		log.Printf("⚠️ [HTTP] Order: invalid JSON body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Invalid request payload"))
	}

	result, err := h.order.Send(c.Context(), o)
	return writeResult(c, result, err)
}

// ListPopupEvents handles GET /v1/popups. A failed content fetch is logged
// and answered with an empty list — the page renders fine without events.
func (h *Handler) ListPopupEvents(c *fiber.Ctx) error {
	evts, err := h.popups.UpcomingEvents(c.Context())
	if err != nil {
		log.Printf("⚠️ [HTTP] Pop-up feed unavailable, returning empty list: %v", err)
		evts = []models.PopupEvent{}
	}
	return c.JSON(fiber.Map{"events": evts})
}

// writeResult maps a relay outcome onto the wire: 200 on success, 400 for
// rejected input, 500 for everything the caller can't fix.
func writeResult(c *fiber.Ctx, result models.RelayResult, err error) error {
	switch {
	case err == nil:
		return c.JSON(result)
	case errors.Is(err, relay.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(result)
	default:
		log.Printf("❌ [HTTP] %s %s → %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	}
}
