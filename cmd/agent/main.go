package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"notion-agent/internal/agents"
	"notion-agent/internal/config"
	apperr "notion-agent/internal/errors"
	"notion-agent/internal/llm"
	"notion-agent/internal/notion"
	"notion-agent/internal/storage"
)

// Exit codes: 0 on success, 2 on input/routing errors, 3 on
// upstream/auth failures.
const (
	exitOK       = 0
	exitInput    = 2
	exitUpstream = 3
)

func main() {
	instruction := flag.String("c", "", "process a single instruction and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Printf("invalid configuration: %v", err)
		os.Exit(exitInput)
	}

	coordinator, err := buildCoordinator(cfg)
	if err != nil {
		log.Printf("failed to initialize: %v", err)
		os.Exit(exitForError(err))
	}

	ctx := context.Background()

	if *instruction != "" {
		result, err := coordinator.Process(ctx, "cli", 0, *instruction)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitForError(err))
		}
		fmt.Println(result.Message)
		os.Exit(exitOK)
	}

	runREPL(ctx, coordinator)
}

func buildCoordinator(cfg *config.Config) (*agents.Coordinator, error) {
	factory := llm.NewFactory(cfg)
	llmClient, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	notionClient, err := notion.NewClient(cfg.NotionToken, cfg.NotionEndpoint, cfg.HTTPTimeout())
	if err != nil {
		return nil, err
	}

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	router := agents.NewRouter(llmClient)
	pageAgent := agents.NewPageAgent(llmClient, notionClient, cfg.NotionPageID)
	blockAgent := agents.NewBlockAgent(llmClient, notionClient)
	return agents.NewCoordinator(router, pageAgent, blockAgent, cfg.NotionPageID, rec), nil
}

func runREPL(ctx context.Context, coordinator *agents.Coordinator) {
	fmt.Println("Notion Agent is live. Type 'exit' or 'quit' to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("User: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if low := strings.ToLower(line); low == "exit" || low == "quit" {
			fmt.Println("Bye bye")
			break
		}

		result, err := coordinator.Process(ctx, "cli", 0, line)
		if err != nil {
			fmt.Println("Notion Agent:", "Error:", err)
			fmt.Println()
			continue
		}
		fmt.Println("Notion Agent:", result.Message)
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		log.Printf("stdin read failed: %v", err)
	}
}

func exitForError(err error) int {
	switch {
	case apperr.IsInput(err) || apperr.IsRouting(err):
		return exitInput
	case apperr.IsAuth(err) || apperr.IsUpstream(err):
		return exitUpstream
	default:
		return exitUpstream
	}
}
