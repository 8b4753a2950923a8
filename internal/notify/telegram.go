package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ai-forecaster/internal/runner"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts a short summary to an operator chat after each run.
// Delivery is best effort: failures are logged, never propagated.
type Telegram struct {
	api    sender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// RunCompleted implements the runner notify hook.
func (t *Telegram) RunCompleted(s runner.Summary) {
	text := fmt.Sprintf("📊 %s", s)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		log.Printf("failed to send run summary to telegram: %v", err)
	}
}
