package notify

import (
	"fmt"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

// Telegram delivers log notifications to a single chat. It satisfies
// logger.Notifier.
type Telegram struct {
	api    *tgbotapi.Bot
	chatId int64
}

func New(token string, chatId int64) (*Telegram, error) {
	if token == "" || chatId == 0 {
		return nil, fmt.Errorf("telegram token and chat_id are required")
	}
	api, err := tgbotapi.NewBot(token, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	return &Telegram{api: api, chatId: chatId}, nil
}

// Notify sends a Markdown message. Failures are swallowed: a broken
// notification channel must never affect request handling.
func (t *Telegram) Notify(text string) {
	if text == "" {
		return
	}
	_, err := t.api.SendMessage(t.chatId, text, &tgbotapi.SendMessageOpts{
		ParseMode: "Markdown",
	})
	if err != nil {
		_, _ = t.api.SendMessage(t.chatId, text, &tgbotapi.SendMessageOpts{})
	}
}
