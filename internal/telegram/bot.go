// Package telegram runs a trivia quiz bot on top of the question bank.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"trivia-api/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of the Bot API the handler talks to.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *UpdateHandler
	logger  *slog.Logger
}

// NewBot authorises against the Bot API with token.
func NewBot(token string, categories *services.CategoryService, quiz *services.QuizService, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorise telegram bot: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Bot{
		api:     api,
		handler: NewUpdateHandler(api, NewStateManager(), categories, quiz, logger),
		logger:  logger,
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info("telegram bot authorised", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handler.Handle(ctx, update)
		}
	}
}
