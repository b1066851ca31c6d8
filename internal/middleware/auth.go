package middleware

import (
	"github.com/dts-gxu/CiJingTong/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("出错了，请稍后再试。")
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("出错了，请稍后再试。")
			}

			// Text flows (/start, password entry) stay open to everyone;
			// unauthorized users may not press any buttons.
			if !authorized && c.Callback() != nil {
				return c.Send("请先通过 /start 输入密码。")
			}

			return next(c)
		}
	}
}
