package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"notion-agent/internal/agents"
	apperr "notion-agent/internal/errors"
)

const startText = `Send me a natural-language instruction for your Notion workspace.

Examples:
- Create a notion page called "Meeting Notes"
- Add a heading "Groceries" in my notion page
- Create a to-do list "milk, eggs, bread" in my notion page`

// Bot feeds incoming messages through the same agent pipeline the CLI
// uses, one update at a time.
type Bot struct {
	api         *tgbotapi.BotAPI
	coordinator *agents.Coordinator
}

func New(botToken string, coordinator *agents.Coordinator) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:         api,
		coordinator: coordinator,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.handleIncomingMessage(ctx, update.Message)
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	if msg.IsCommand() {
		if msg.Command() == "start" {
			b.sendMessage(msg.Chat.ID, startText)
		}
		return
	}

	result, err := b.coordinator.Process(ctx, "telegram", msg.Chat.ID, msg.Text)
	if err != nil {
		log.Printf("failed to process instruction: %v", err)
		b.sendMessage(msg.Chat.ID, errorReply(err))
		return
	}

	b.sendMessage(msg.Chat.ID, result.Message)
}

// errorReply phrases an error for the chat without hiding the upstream
// message.
func errorReply(err error) string {
	switch {
	case apperr.IsRouting(err):
		return "I could not recognize that as a page or block instruction. " + err.Error()
	case apperr.IsInput(err):
		return "That instruction is missing something: " + err.Error()
	case apperr.IsAuth(err):
		return "Notion rejected my credentials: " + err.Error()
	default:
		return "Upstream call failed: " + err.Error()
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
