// internal/notify/notifier.go

// Package notify delivers operator messages. The Notifier absorbs every
// transport failure: a broken notification path must not be able to
// crash the watch loop, so the outcome is a plain bool.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Sender is the transport behind the Notifier.
type Sender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// Notifier sends text to one fixed destination chat.
type Notifier struct {
	sender Sender
	chatID string
	log    zerolog.Logger
}

func New(sender Sender, chatID string, log zerolog.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		chatID: chatID,
		log:    log.With().Str("component", "notify").Logger(),
	}
}

// Notify attempts delivery and reports whether it succeeded. Failures
// are logged here and never propagate.
func (n *Notifier) Notify(ctx context.Context, text string) bool {
	n.log.Debug().Str("text", text).Msg("sending message")

	if err := n.sender.SendMessage(ctx, n.chatID, text); err != nil {
		n.log.Error().Err(err).Msg("message not delivered")
		return false
	}

	n.log.Info().Str("text", text).Msg("message delivered")
	return true
}
