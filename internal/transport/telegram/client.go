package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"goalbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Client talks to the Telegram Bot API with long polling
type Client struct {
	bot         *tele.Bot
	pollTimeout time.Duration
	logger      *zap.Logger
}

// NewClient creates a client and checks the token with getMe
func NewClient(token string, pollTimeout time.Duration, logger *zap.Logger) (*Client, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token: token,
		// The HTTP deadline has to outlive the server-side long poll.
		Client: &http.Client{Timeout: pollTimeout + 10*time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return newClient(bot, pollTimeout, logger), nil
}

func newClient(bot *tele.Bot, pollTimeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		bot:         bot,
		pollTimeout: pollTimeout,
		logger:      logger,
	}
}

type getUpdatesResponse struct {
	Result []tele.Update `json:"result"`
}

// FetchUpdates long-polls for updates starting at offset.
// An empty batch after the poll timeout is not an error.
func (c *Client) FetchUpdates(ctx context.Context, offset int64) ([]domain.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := map[string]string{
		"offset":          strconv.FormatInt(offset, 10),
		"timeout":         strconv.Itoa(int(c.pollTimeout / time.Second)),
		"allowed_updates": `["message"]`,
	}

	data, err := c.bot.Raw("getUpdates", params)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	var resp getUpdatesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Error("Malformed getUpdates response", zap.Error(err), zap.Int("bytes", len(data)))
		return nil, fmt.Errorf("decode updates: %w", err)
	}

	if len(resp.Result) > 0 {
		c.logger.Debug("Updates received",
			zap.Int64("offset", offset),
			zap.Int("count", len(resp.Result)),
		)
	}

	updates := make([]domain.Update, 0, len(resp.Result))
	for _, u := range resp.Result {
		updates = append(updates, toDomainUpdate(u))
	}

	return updates, nil
}

// SendText sends a plain text message to the chat.
// Text over the message size limit goes out as several messages in order;
// sending stops at the first failed chunk.
func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	chunks := splitMessage(text, maxMessageRunes)
	if len(chunks) > 1 {
		c.logger.Debug("Splitting long reply",
			zap.Int64("chat_id", chatID),
			zap.Int("chunks", len(chunks)),
		)
	}

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := c.bot.Send(tele.ChatID(chatID), chunk); err != nil {
			c.logger.Warn("Failed to send message chunk",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.Int("chunk", i+1),
				zap.Int("chunks", len(chunks)),
			)
			return fmt.Errorf("send message to chat %d: %w", chatID, err)
		}
	}
	return nil
}

func toDomainUpdate(u tele.Update) domain.Update {
	update := domain.Update{ID: int64(u.ID)}

	msg := u.Message
	if msg == nil || msg.Chat == nil {
		return update
	}

	var handle string
	if msg.Sender != nil {
		handle = msg.Sender.Username
	}

	update.Message = &domain.Message{
		ChatID:       msg.Chat.ID,
		SenderHandle: handle,
		Text:         msg.Text,
	}
	return update
}
