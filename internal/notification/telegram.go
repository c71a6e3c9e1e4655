package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// sender is the part of the bot API the notifier needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking changes to an operations chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b domain.Booking) {
	n.send(ctx, "*New booking*\n\n"+describe(b))
}

func (n *TelegramNotifier) NotifyBookingUpdated(ctx context.Context, b domain.Booking) {
	n.send(ctx, "*Booking updated*\n\n"+describe(b))
}

func describe(b domain.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking: %s\n", b.ID)
	fmt.Fprintf(&sb, "Facility: %s\n", b.FacilityID)
	fmt.Fprintf(&sb, "Visitor: %s\n", b.VisitorID)
	fmt.Fprintf(&sb, "Quantity: %d\n", b.Quantity)
	fmt.Fprintf(&sb, "Date: %s", b.BookingDateTime)
	return sb.String()
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
