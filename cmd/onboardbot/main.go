package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/phuquy-28/onboarding-chatbot/internal/chat"
	"github.com/phuquy-28/onboarding-chatbot/internal/config"
	"github.com/phuquy-28/onboarding-chatbot/internal/llm"
	"github.com/phuquy-28/onboarding-chatbot/internal/orchestrator"
	"github.com/phuquy-28/onboarding-chatbot/internal/server"
	"github.com/phuquy-28/onboarding-chatbot/internal/store"
	"github.com/phuquy-28/onboarding-chatbot/internal/tools"
)

var addrFlag string

var root = &cobra.Command{
	Use:     "onboardbot",
	Short:   "Employee onboarding chatbot backend",
	Example: "onboardbot --addr :5000",
	RunE:    runServe,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat loop against the orchestrator (no HTTP server)",
	RunE:  runChat,
}

func main() {
	root.PersistentFlags().StringVar(&addrFlag, "addr", "", "bind address (overrides HOST/PORT)")
	root.AddCommand(chatCmd)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, *store.Store, error) {
	if missing := cfg.MissingVars(); len(missing) > 0 {
		log.Printf("[onboardbot] warning: missing environment variables: %s", strings.Join(missing, ", "))
		log.Printf("[onboardbot] create a .env file based on .env.example")
	}

	adapter, err := llm.NewAdapter(llm.Options{
		Provider:   llm.Provider(cfg.Provider),
		Model:      cfg.Deployment,
		BaseURL:    cfg.Endpoint,
		APIKey:     cfg.APIKey,
		APIVersion: cfg.APIVersion,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize adapter: %w", err)
	}

	db := store.New()
	registry := tools.NewDefaultRegistry(db, nil)
	return orchestrator.New(adapter, registry), db, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	orc, db, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Addr()
	if addrFlag != "" {
		addr = addrFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(orc, db, addr, cfg.RequestTimeout, nil).Start(ctx)
}

// runChat is a local REPL for poking at the loop without a server: each
// turn feeds the accumulated conversation back in, exactly as a browser
// client would.
func runChat(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	orc, _, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	fmt.Println("onboardbot chat")
	fmt.Println("Type /exit to quit, /clear to reset context.")

	var history []chat.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch input {
		case "/exit", "exit", "quit":
			return nil
		case "/clear":
			history = nil
			fmt.Println("context cleared")
			continue
		}

		turnCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		reply, err := orc.Respond(turnCtx, append(history, chat.Message{Role: chat.RoleUser, Content: input}))
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		history = reply.Messages

		fmt.Println(reply.Answer)
		for _, p := range reply.SuggestedPrompts {
			fmt.Printf("  · %s\n", p)
		}
	}
}
