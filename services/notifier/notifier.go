package notifier

import (
	"fmt"
	"os"
	"strconv"

	"bm-admin/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AlertNotifier pushes emergency alerts to an external channel. Delivery is
// best-effort; callers must not fail their own operation on a notify error.
type AlertNotifier interface {
	NotifyAlert(text string) error
}

// TelegramNotifier sends alerts to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier builds a notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID. Returns nil when either is unset so the feature stays
// optional in environments without a bot.
func NewTelegramNotifier() *TelegramNotifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chat := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chat == "" {
		return nil
	}

	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		logger.Warning(fmt.Sprintf("Invalid TELEGRAM_CHAT_ID %q, alert notifications disabled", chat))
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Warning(fmt.Sprintf("Failed to connect Telegram bot, alert notifications disabled: %v", err))
		return nil
	}

	logger.Info(fmt.Sprintf("Telegram alert notifier connected as @%s", bot.Self.UserName))
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (t *TelegramNotifier) NotifyAlert(text string) error {
	if t == nil {
		return nil
	}
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text))
	return err
}
