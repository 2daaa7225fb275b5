package bot

import (
	"context"
	"errors"
	"sort"
	"time"

	"goalbot/internal/domain"
	"goalbot/internal/handler"

	"go.uber.org/zap"
)

// Transport fetches updates from and sends replies to the chat service
type Transport interface {
	FetchUpdates(ctx context.Context, offset int64) ([]domain.Update, error)
	SendText(ctx context.Context, chatID int64, text string) error
}

// UserResolver maps a chat to its bot user, creating it on first contact
type UserResolver interface {
	Resolve(ctx context.Context, chatID int64, username string) (*domain.BotUser, error)
}

// Options tune the engine loop
type Options struct {
	RetryDelay time.Duration
	SessionTTL time.Duration
}

// Engine owns the poll, dispatch and reply cycle.
// It is single-threaded: one update is fully handled before the next starts.
type Engine struct {
	transport Transport
	users     UserResolver
	handler   *handler.Handler
	sessions  *handler.SessionStore
	logger    *zap.Logger
	opts      Options

	offset int64
}

// NewEngine creates a new engine starting at offset 0
func NewEngine(
	transport Transport,
	users UserResolver,
	h *handler.Handler,
	sessions *handler.SessionStore,
	logger *zap.Logger,
	opts Options,
) *Engine {
	return &Engine{
		transport: transport,
		users:     users,
		handler:   h,
		sessions:  sessions,
		logger:    logger,
		opts:      opts,
	}
}

// Offset returns the next update ID the engine will ask for
func (e *Engine) Offset() int64 {
	return e.offset
}

// Run polls until ctx is cancelled
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("Bot engine started", zap.Int64("offset", e.offset))

	for {
		if err := ctx.Err(); err != nil {
			e.logger.Info("Bot engine stopped", zap.Int64("offset", e.offset))
			return nil
		}

		if err := e.Poll(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			e.logger.Warn("Failed to fetch updates", zap.Error(err), zap.Int64("offset", e.offset))
			e.sleep(ctx, e.opts.RetryDelay)
			continue
		}

		if e.opts.SessionTTL > 0 {
			if n := e.sessions.Prune(e.opts.SessionTTL); n > 0 {
				e.logger.Debug("Idle sessions pruned",
					zap.Int("count", n),
					zap.Int("remaining", e.sessions.Len()),
				)
			}
		}
	}
}

// Poll fetches one batch and handles its updates in ascending ID order.
// Only a failed fetch is returned; per-update failures are logged.
func (e *Engine) Poll(ctx context.Context) error {
	updates, err := e.transport.FetchUpdates(ctx, e.offset)
	if err != nil {
		return err
	}

	sort.Slice(updates, func(i, j int) bool { return updates[i].ID < updates[j].ID })

	for _, upd := range updates {
		if upd.ID < e.offset {
			e.logger.Debug("Skipping already handled update", zap.Int64("update_id", upd.ID))
			continue
		}
		e.offset = upd.ID + 1
		e.handleUpdate(ctx, upd)
	}

	return nil
}

func (e *Engine) handleUpdate(ctx context.Context, upd domain.Update) {
	msg := upd.Message
	if msg == nil {
		e.logger.Debug("Ignoring update without message", zap.Int64("update_id", upd.ID))
		return
	}

	user, err := e.users.Resolve(ctx, msg.ChatID, msg.SenderHandle)
	if err != nil {
		e.logger.Error("Failed to resolve bot user",
			zap.Error(err),
			zap.Int64("update_id", upd.ID),
			zap.Int64("chat_id", msg.ChatID),
		)
		e.reply(ctx, msg.ChatID, handler.FailureReply)
		return
	}

	session := e.sessions.GetState(msg.ChatID)
	reply, next := e.handler.Dispatch(ctx, user, session, msg.Text)

	e.logger.Info("Update handled",
		zap.Int64("update_id", upd.ID),
		zap.Int64("chat_id", msg.ChatID),
		zap.Bool("verified", user.IsVerified()),
		zap.Stringer("phase", session.Phase()),
		zap.Stringer("next_phase", next.Phase()),
	)

	e.reply(ctx, msg.ChatID, reply)
	e.sessions.SetState(next)
}

// reply sends text; failures are logged and dropped since there is no redelivery
func (e *Engine) reply(ctx context.Context, chatID int64, text string) {
	if err := e.transport.SendText(ctx, chatID, text); err != nil {
		e.logger.Error("Failed to send reply", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (e *Engine) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
