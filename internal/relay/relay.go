// internal/relay/relay.go
package relay

import (
	"context"
	"errors"

	"mahalo-service/internal/email"
)

// EmailSender relays one composed message to the delivery provider.
// *email.Sender is the production implementation; tests substitute fakes.
type EmailSender interface {
	Send(ctx context.Context, msg *email.Message) error
}

// Relay error taxonomy. The transport layer maps these onto HTTP statuses:
// validation → 400, everything else → 500. The user-facing message rides in
// the RelayResult; the error carries the server-side classification.
var (
	// ErrValidation marks user-correctable input problems. No outbound
	// call has been made when this is returned.
	ErrValidation = errors.New("validation failed")

	// ErrRelay marks a failed outbound delivery (provider rejected the
	// message or the request itself failed).
	ErrRelay = errors.New("email relay failed")
)
