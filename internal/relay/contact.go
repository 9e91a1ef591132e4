// internal/relay/contact.go
package relay

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mahalo-service/internal/config"
	"mahalo-service/internal/email"
	"mahalo-service/internal/email/templates"
	"mahalo-service/pkg/models"
	"mahalo-service/utils"
)

// ContactRelay validates contact-form submissions, composes the
// notification email and forwards it to the business inbox.
type ContactRelay struct {
	cfg    *config.Config
	sender EmailSender
}

func NewContactRelay(cfg *config.Config, sender EmailSender) *ContactRelay {
	return &ContactRelay{cfg: cfg, sender: sender}
}

// Send relays one contact-form message. Validation happens before any
// outbound call; the returned RelayResult always carries the user-facing
// outcome and the error classifies the failure for the transport layer.
func (r *ContactRelay) Send(ctx context.Context, msg models.ContactMessage) (models.RelayResult, error) {
	// Trimming is the caller's job; presence is checked as-is.
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		log.Printf("⚠️ [CONTACT] Rejected submission with missing fields")
		return models.Fail("Name, email, and message are required"), ErrValidation
	}

	htmlBody, err := templates.RenderContactEmail(templates.ContactData{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	})
	if err != nil {
		log.Printf("❌ [CONTACT] Template render failed: %v", err)
		return models.Fail("Failed to send message"), fmt.Errorf("render contact email: %w", err)
	}

	out := &email.Message{
		FromName:     r.cfg.ContactFormName,
		ToName:       r.cfg.RecipientName,
		Subject:      fmt.Sprintf("Contact Form Message from %s", msg.Name),
		HTML:         htmlBody,
		Text:         utils.StripHTML(htmlBody),
		ReplyToName:  msg.Name,
		ReplyToEmail: msg.Email,
	}

	if err := r.sender.Send(ctx, out); err != nil {
		var apiErr *email.APIError
		if errors.As(err, &apiErr) {
			log.Printf("❌ [CONTACT] MailerSend rejected message from %q: %v", msg.Email, err)
			return models.Fail(fmt.Sprintf("MailerSend API error: %d", apiErr.StatusCode)),
				fmt.Errorf("%w: %v", ErrRelay, err)
		}
		// Config or transport problem — no detail leaks to the caller.
		log.Printf("❌ [CONTACT] Send failed: %v", err)
		return models.Fail("Failed to send message"), fmt.Errorf("%w: %v", ErrRelay, err)
	}

	log.Printf("✅ [CONTACT] Message relayed | From: %s <%s>", msg.Name, msg.Email)
	return models.OK("Message sent successfully"), nil
}
