// internal/relay/order.go
package relay

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"mahalo-service/internal/config"
	"mahalo-service/internal/email"
	"mahalo-service/internal/email/templates"
	"mahalo-service/internal/order"
	"mahalo-service/pkg/models"
	"mahalo-service/utils"
)

// OrderRelay validates Moore Homes cookie orders, composes the order email
// with its CSV summary attachment and forwards it to the business inbox.
//
// The browser form runs the same checks before submitting, but the endpoint
// is reachable directly, so everything is re-checked here.
type OrderRelay struct {
	cfg      *config.Config
	sender   EmailSender
	validate *validator.Validate

	now func() time.Time
}

func NewOrderRelay(cfg *config.Config, sender EmailSender, validate *validator.Validate) *OrderRelay {
	return &OrderRelay{
		cfg:      cfg,
		sender:   sender,
		validate: validate,
		now:      time.Now,
	}
}

// Send relays one cookie order. Validation happens before any outbound call.
func (r *OrderRelay) Send(ctx context.Context, o models.CookieOrder) (models.RelayResult, error) {
	if result, ok := r.validateOrder(&o); !ok {
		return result, ErrValidation
	}

	formattedTime := order.FormatTime12Hour(o.PreferredPickupTime)

	csvContent, err := order.BuildCSV(&o, formattedTime)
	if err != nil {
		log.Printf("❌ [ORDER] CSV build failed: %v", err)
		return models.Fail("Failed to send email"), fmt.Errorf("build order csv: %w", err)
	}

	receiveTexts := "No"
	if o.ReceiveTexts {
		receiveTexts = "Yes"
	}

	htmlBody, err := templates.RenderOrderEmail(templates.OrderData{
		CouponCode:   o.CouponCode,
		ClientName:   o.ClientName,
		CellPhone:    o.CellPhoneNumber,
		Email:        o.EmailAddress,
		ReceiveTexts: receiveTexts,
		TotalCookies: o.TotalCookies(),
		Selection:    order.SelectionLines(o.CookieQuantities),
		PickupDate:   o.PreferredPickupDate,
		PickupTime:   formattedTime,
	})
	if err != nil {
		log.Printf("❌ [ORDER] Template render failed: %v", err)
		return models.Fail("Failed to send email"), fmt.Errorf("render order email: %w", err)
	}

	out := &email.Message{
		FromName: r.cfg.SenderName,
		ToName:   r.cfg.OrdersName,
		Subject:  "Moore Homes Cookie Order",
		HTML:     htmlBody,
		Text:     utils.StripHTML(htmlBody),
		Attachments: []email.Attachment{{
			Content:  base64.StdEncoding.EncodeToString([]byte(csvContent)),
			Filename: order.AttachmentFilename(o.CouponCode, r.now()),
		}},
	}

	if err := r.sender.Send(ctx, out); err != nil {
		var apiErr *email.APIError
		if errors.As(err, &apiErr) {
			log.Printf("❌ [ORDER] MailerSend rejected order %q: %v", o.CouponCode, err)
			return models.Fail(fmt.Sprintf("MailerSend API error: %d", apiErr.StatusCode)),
				fmt.Errorf("%w: %v", ErrRelay, err)
		}
		log.Printf("❌ [ORDER] Send failed for order %q: %v", o.CouponCode, err)
		return models.Fail("Failed to send email"), fmt.Errorf("%w: %v", ErrRelay, err)
	}

	log.Printf("✅ [ORDER] Order relayed | Coupon: %s | Total: %d cookies | Pickup: %s %s",
		o.CouponCode, o.TotalCookies(), o.PreferredPickupDate, formattedTime)
	return models.OK("Order email sent successfully"), nil
}

// validateOrder re-runs every client-side rule. The bool is false when the
// order is rejected; the RelayResult then carries the user-facing message.
func (r *OrderRelay) validateOrder(o *models.CookieOrder) (models.RelayResult, bool) {
	if err := r.validate.Struct(o); err != nil {
		log.Printf("⚠️ [ORDER] Struct validation failed: %v", err)
		return models.Fail("All order fields are required and quantities must be between 0 and 12"), false
	}

	for name := range o.CookieQuantities {
		if !order.IsCatalogItem(name) {
			log.Printf("⚠️ [ORDER] Unknown cookie in order %q: %q", o.CouponCode, name)
			return models.Fail(fmt.Sprintf("Unknown cookie selection: %s", name)), false
		}
	}

	total := o.TotalCookies()
	if total < order.MinTotalCookies {
		return models.Fail(fmt.Sprintf("Please select at least %d cookies", order.MinTotalCookies)), false
	}
	if total > order.MaxTotalCookies {
		return models.Fail(fmt.Sprintf("Total cookies cannot exceed %d", order.MaxTotalCookies)), false
	}

	// The datetime tag guarantees the date parses; these are the business
	// rules on top of it. Too-soon is reported before closed-day, matching
	// the form's own ordering.
	pickup, err := time.ParseInLocation("2006-01-02", o.PreferredPickupDate, time.Local)
	if err != nil {
		return models.Fail("Preferred pickup date is invalid"), false
	}
	if pickup.Before(order.MinPickupDate(r.now())) {
		return models.Fail("Pickup date must be at least 1 day from now (2 days if ordering on Saturday)"), false
	}
	if !order.IsValidPickupDate(o.PreferredPickupDate) {
		return models.Fail("Sorry, we are closed on Sundays and Mondays. Please select Tuesday through Saturday."), false
	}

	return models.RelayResult{}, true
}
