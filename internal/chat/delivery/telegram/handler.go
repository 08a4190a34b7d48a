package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-bot/internal/chat"
	pkgLog "restaurant-bot/pkg/log"
	pkgResponse "restaurant-bot/pkg/response"
	pkgTelegram "restaurant-bot/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and replies from a background goroutine so a
// slow sendMessage call never delays Telegram's delivery.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil || update.Message.From == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	clientID := fmt.Sprintf("%s%d", clientIDPrefix, msg.From.ID)

	cmd, arg, _ := strings.Cut(text, " ")
	// Commands may be addressed as /cmd@BotName in groups.
	cmd, _, _ = strings.Cut(cmd, "@")

	switch cmd {
	case cmdStart:
		if err := h.uc.Reset(ctx, clientID); err != nil {
			h.l.Warnf(ctx, "telegram handler: reset %s: %v", clientID, err)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgWelcome)
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	case cmdAlgo:
		return h.handleAlgo(ctx, msg.Chat.ID, clientID, strings.TrimSpace(arg))
	}

	output, err := h.uc.Chat(ctx, chat.ChatInput{ClientID: clientID, Text: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Chat: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err, nil))
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, output.Reply)
}

func (h *handler) handleAlgo(ctx context.Context, chatID int64, clientID, algo string) error {
	algos := h.uc.Algorithms(ctx)
	if algo == "" {
		return h.bot.SendMessage(ctx, chatID, fmt.Sprintf("Classifiers: %s (default %s)",
			strings.Join(algos.Available, ", "), algos.Default))
	}

	out, err := h.uc.SetAlgo(ctx, chat.SetAlgoInput{ClientID: clientID, Algo: algo})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: uc.SetAlgo: %v", err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err, algos.Available))
	}
	return h.bot.SendMessage(ctx, chatID, fmt.Sprintf("Classifier set to %s.", out.Algo))
}
