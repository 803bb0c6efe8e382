package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kcalbot-dev/kcalbot"
	"github.com/kcalbot-dev/kcalbot/internal/nutrition"
	"github.com/kcalbot-dev/kcalbot/internal/quantity"
	"github.com/kcalbot-dev/kcalbot/internal/resolver"
)

// Version is set via ldflags.
var Version = "dev"

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "kcalbot",
		Short: "Conversational calorie-counting assistant",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", os.Getenv("KCALBOT_CONFIG"), "configuration file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadApp(overrideTransport string) (*kcalbot.App, error) {
	cfg, err := kcalbot.LoadConfig(kcalbot.OSFileReader{}, configFile)
	if err != nil {
		return nil, err
	}
	if overrideTransport != "" {
		cfg.Transport = overrideTransport
	}
	return kcalbot.NewApp(cfg)
}

func runApp(app *kcalbot.App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("[MAIN] shutting down...")
		cancel()
	}()

	if err := app.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot with the configured transport",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp("")
			if err != nil {
				return err
			}
			log.Printf("[MAIN] kcalbot %s starting", Version)
			return runApp(app)
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot in an interactive console",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp("console")
			if err != nil {
				return err
			}
			return runApp(app)
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [text]",
		Short: "Debug the food resolver against the built-in table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.ToLower(strings.Join(args, " "))
			table := nutrition.Default()

			parsed, found := quantity.Extract(text)
			if found {
				fmt.Printf("quantity: %.0f g (unit %q, converted=%v)\n", parsed.Grams, parsed.RawUnit, parsed.Converted)
			} else {
				fmt.Println("quantity: not found")
			}

			match := resolver.Resolve(quantity.Strip(text), table)
			if match.Method == resolver.None {
				fmt.Println("match: none")
				return nil
			}
			e := match.Entry
			fmt.Printf("match: %s (method %s)\n", e.Name, match.Method)
			fmt.Printf("per 100 g: %.0f kcal, protein %.1f, fat %.1f, carbs %.1f\n",
				e.Calories, e.Protein, e.Fat, e.Carbs)
			if found {
				fmt.Printf("for %.0f g: %d kcal\n", parsed.Grams, e.CaloriesFor(parsed.Grams))
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kcalbot %s\n", Version)
		},
	}
}
