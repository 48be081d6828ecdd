package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"notion-agent/internal/agents"
	"notion-agent/internal/config"
	"notion-agent/internal/llm"
	"notion-agent/internal/notion"
	"notion-agent/internal/scheduler"
	"notion-agent/internal/storage"
	"notion-agent/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatalf("TELEGRAM_BOT_TOKEN is required for the bot surface")
	}

	factory := llm.NewFactory(cfg)
	llmClient, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	notionClient, err := notion.NewClient(cfg.NotionToken, cfg.NotionEndpoint, cfg.HTTPTimeout())
	if err != nil {
		log.Fatalf("failed to create notion client: %v", err)
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
	coordinator := agents.NewCoordinator(router, pageAgent, blockAgent, cfg.NotionPageID, rec)

	// Daily digest of recorded interactions, optional
	if rec != nil && cfg.DigestCronSpec != "" {
		digest := agents.NewDigestWorkflow(llmClient, notionClient, rec, cfg.NotionPageID)
		sched := scheduler.New()
		sched.SetDigestFunction(func(ctx context.Context) error {
			_, err := digest.GenerateDailyDigest(ctx, time.Now().UTC())
			return err
		})
		if err := sched.Start(cfg.DigestCronSpec); err != nil {
			log.Printf("failed to start scheduler: %v", err)
		} else {
			defer sched.Stop()
		}
	}

	bot, err := telegram.New(cfg.TelegramBotToken, coordinator)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	bot.Start(context.Background())
}
