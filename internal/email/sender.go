// internal/email/sender.go
package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mailersend/mailersend-go"

	"mahalo-service/internal/config"
)

// ErrNotConfigured is returned when the MailerSend credential is absent.
// config.Load refuses to start without it, so hitting this at runtime means
// the sender was built from a hand-rolled config (tests, mostly).
var ErrNotConfigured = errors.New("mailersend api token not configured")

// APIError reports a non-success response from the MailerSend API.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mailersend api error: status %d", e.StatusCode)
}

// Attachment is a base64-encoded file attached to an outbound email.
type Attachment struct {
	Content  string
	Filename string
}

// Message is one fully-composed outbound email. The recipient inbox is fixed
// by configuration; callers only choose the display names, bodies and
// reply-to.
type Message struct {
	FromName     string
	ToName       string
	Subject      string
	HTML         string
	Text         string
	ReplyToName  string
	ReplyToEmail string
	Attachments  []Attachment
}

type Sender struct {
	cfg *config.Config
	ms  *mailersend.Mailersend
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{
		cfg: cfg,
		ms:  mailersend.NewMailersend(cfg.MailerSendAPIToken),
	}
}

// Send relays one message through the MailerSend API. A single attempt, no
// retries — a failed send is reported back to the caller immediately.
func (s *Sender) Send(ctx context.Context, msg *Message) error {
	if s.cfg.MailerSendAPIToken == "" {
		return ErrNotConfigured
	}

	log.Printf("📧 [SEND] To: %s | Subject: %s | Attachments: %d",
		s.cfg.RecipientEmail, msg.Subject, len(msg.Attachments))

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	fromName := msg.FromName
	if fromName == "" {
		fromName = s.cfg.SenderName
	}
	toName := msg.ToName
	if toName == "" {
		toName = s.cfg.RecipientName
	}

	m := s.ms.Email.NewMessage()
	m.SetFrom(mailersend.From{Name: fromName, Email: s.cfg.SenderEmail})
	m.SetRecipients([]mailersend.Recipient{
		{Name: toName, Email: s.cfg.RecipientEmail},
	})
	m.SetSubject(msg.Subject)
	m.SetHTML(msg.HTML)
	m.SetText(msg.Text)
	if msg.ReplyToEmail != "" {
		m.SetReplyTo(mailersend.ReplyTo{Name: msg.ReplyToName, Email: msg.ReplyToEmail})
	}
	for _, a := range msg.Attachments {
		m.AddAttachment(mailersend.Attachment{
			Content:     a.Content,
			Filename:    a.Filename,
			Disposition: mailersend.DispositionAttachment,
		})
	}

	res, err := s.ms.Email.Send(ctx, m)
	if err != nil {
		if res != nil {
			log.Printf("❌ [SEND] MailerSend rejected message (status %d): %v", res.StatusCode, err)
			return &APIError{StatusCode: res.StatusCode}
		}
		log.Printf("❌ [SEND] MailerSend request failed: %v", err)
		return fmt.Errorf("mailersend send: %w", err)
	}
	if res.StatusCode >= 300 {
		log.Printf("❌ [SEND] MailerSend returned status %d | X-Request-Id: %s",
			res.StatusCode, res.Header.Get("X-Request-Id"))
		return &APIError{StatusCode: res.StatusCode}
	}

	log.Printf("✅ [SUCCESS] Email relayed | Subject: %s | X-Message-Id: %s",
		msg.Subject, res.Header.Get("X-Message-Id"))
	return nil
}
