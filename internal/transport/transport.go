// Package transport defines the messaging boundary: something that
// delivers (userID, text) pairs inbound and accepts replies outbound.
// The engine never knows which transport is attached.
package transport

import (
	"context"

	"github.com/kcalbot-dev/kcalbot/internal/engine"
)

// Handler processes one inbound message and produces the reply.
type Handler func(ctx context.Context, userID, text string) (engine.Reply, error)

// Transport runs a message loop, calling the handler for each inbound
// message until the context is cancelled or the input ends.
type Transport interface {
	Run(ctx context.Context, handle Handler) error
}
