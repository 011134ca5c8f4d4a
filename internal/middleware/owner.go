package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// OwnerOnly restricts the bot to its single configured owner. Updates
// from any other chat are answered with a short notice and dropped.
func OwnerOnly(ownerChatID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if sender.ID != ownerChatID {
				logger.Warn("Ignoring update from foreign chat",
					zap.Int64("chat_id", sender.ID),
					zap.String("username", sender.Username),
				)
				return c.Send("This bot serves a single owner.")
			}

			return next(c)
		}
	}
}
