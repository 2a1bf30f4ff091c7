// Package telegram delivers finished reports to one fixed chat. Sends
// never propagate errors; failure is reported through the return value and
// the log only.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Notifier struct {
	api     sender
	chatID  int64
	channel string
	log     *zap.Logger
}

// NewNotifier validates the destination and connects the bot. Token and
// destination problems surface here, at startup, as configuration errors.
func NewNotifier(token, chatID string, log *zap.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return newNotifier(api, chatID, log)
}

func newNotifier(api sender, chatID string, log *zap.Logger) (*Notifier, error) {
	n := &Notifier{api: api, log: log}
	if strings.HasPrefix(chatID, "@") {
		n.channel = chatID
		return n, nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("telegram chat id %q is neither numeric nor a @channel name", chatID)
	}
	n.chatID = id
	return n, nil
}

// Send delivers one HTML-mode message, sanitized to Telegram's limits.
// Returns false on any provider or network failure.
func (n *Notifier) Send(ctx context.Context, text string) bool {
	if err := ctx.Err(); err != nil {
		n.log.Warn("telegram send skipped", zap.Error(err))
		return false
	}

	payload := Sanitize(text)

	var msg tgbotapi.MessageConfig
	if n.channel != "" {
		msg = tgbotapi.NewMessageToChannel(n.channel, payload)
	} else {
		msg = tgbotapi.NewMessage(n.chatID, payload)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := n.api.Send(msg); err != nil {
		n.log.Error("failed to send telegram message", zap.Error(err))
		return false
	}
	n.log.Info("telegram report sent", zap.Int("chars", len([]rune(payload))))
	return true
}
