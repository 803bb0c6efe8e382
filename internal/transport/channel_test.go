package transport

import (
	"context"
	"testing"
	"time"

	"github.com/kcalbot-dev/kcalbot/internal/engine"
)

func TestChannelPumpsMessages(t *testing.T) {
	ch := NewChannel(4)
	echo := func(ctx context.Context, userID, text string) (engine.Reply, error) {
		return engine.Reply{Text: "echo: " + text}, nil
	}

	done := make(chan error, 1)
	go func() { done <- ch.Run(context.Background(), echo) }()

	ch.In <- Inbound{UserID: "u1", Text: "привет"}
	select {
	case out := <-ch.Out:
		if out.UserID != "u1" || out.Reply.Text != "echo: привет" {
			t.Errorf("out = %+v, want echoed reply for u1", out)
		}
	case <-time.After(time.Second):
		t.Fatal("no outbound message within 1s")
	}

	close(ch.In)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v after In closed, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after In closed")
	}

	if _, ok := <-ch.Out; ok {
		t.Error("Out must be closed after In closes")
	}
}

func TestChannelStopsOnCancel(t *testing.T) {
	ch := NewChannel(1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- ch.Run(ctx, func(ctx context.Context, userID, text string) (engine.Reply, error) {
			return engine.Reply{}, nil
		})
	}()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
