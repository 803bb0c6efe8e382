package transport

import (
	"context"

	"github.com/kcalbot-dev/kcalbot/internal/engine"
)

// Inbound is one message entering the system.
type Inbound struct {
	UserID string
	Text   string
}

// Outbound pairs a reply with the user it goes to.
type Outbound struct {
	UserID string
	Reply  engine.Reply
}

// Channel is a channel-backed transport used by tests and embedders that
// already have their own delivery mechanism.
type Channel struct {
	In  chan Inbound
	Out chan Outbound
}

// NewChannel creates a channel transport with the given buffer size.
func NewChannel(buffer int) *Channel {
	return &Channel{
		In:  make(chan Inbound, buffer),
		Out: make(chan Outbound, buffer),
	}
}

// Run pumps messages from In through the handler into Out until the
// context is cancelled or In is closed.
func (c *Channel) Run(ctx context.Context, handle Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-c.In:
			if !ok {
				close(c.Out)
				return nil
			}
			reply, err := handle(ctx, msg.UserID, msg.Text)
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case c.Out <- Outbound{UserID: msg.UserID, Reply: reply}:
			}
		}
	}
}
