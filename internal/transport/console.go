package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/peterh/liner"
)

// Console is an interactive terminal transport for local testing. All
// input is attributed to a single synthetic user id.
type Console struct {
	UserID string
}

// NewConsole creates a console transport.
func NewConsole() *Console {
	return &Console{UserID: "console"}
}

// Run reads lines until EOF or cancellation. Quick-reply choices are
// printed under each reply and offered as completions.
func (c *Console) Run(ctx context.Context, handle Handler) error {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()
	line.SetCtrlCAborts(true)

	var choices []string
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, ch := range choices {
			if strings.HasPrefix(strings.ToLower(ch), strings.ToLower(prefix)) {
				out = append(out, ch)
			}
		}
		return out
	})

	fmt.Println("kcalbot console, /start to begin, Ctrl-D to quit")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		line.AppendHistory(text)

		reply, err := handle(ctx, c.UserID, text)
		if err != nil {
			log.Printf("[CONSOLE] handler error: %v", err)
			continue
		}

		fmt.Println(reply.Text)
		if len(reply.Choices) > 0 {
			fmt.Printf("  [%s]\n", strings.Join(reply.Choices, " | "))
			choices = reply.Choices
		} else {
			choices = nil
		}
	}
}
