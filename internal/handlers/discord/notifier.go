package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/KirkDiggler/pearl/internal/services/music"
)

var _ music.Notifier = (*Notifier)(nil)

// Notifier posts music session announcements to text channels
type Notifier struct {
	session *discordgo.Session
	logger  *slog.Logger
}

// NewNotifier creates a Notifier on an existing session
func NewNotifier(session *discordgo.Session, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{session: session, logger: logger}
}

// Notify sends a notification to its channel
func (n *Notifier) Notify(ctx context.Context, notification *models.Notification) error {
	msg := renderNotification(notification)
	if msg == nil {
		n.logger.WarnContext(ctx, "dropping notification of unknown type", "type", notification.Type)
		return nil
	}

	_, err := n.session.ChannelMessageSendComplex(notification.ChannelID, msg, discordgo.WithContext(ctx))
	return err
}
