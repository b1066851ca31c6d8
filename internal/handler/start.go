package handler

import (
	"strings"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("出错了，请稍后再试。")
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("出错了，请稍后再试。")
	}

	if !authorized {
		// Request password
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send("欢迎使用词境通！请输入访问密码：")
	}

	// Show main menu
	h.ResetState(userID)
	return c.Send(
		"🏠 主菜单\n\n每天坚持一点点，词汇量自然上来。",
		mainMenuMarkup(),
	)
}

// handleText handles plain text messages: password entry for new users,
// a gentle hint otherwise.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("出错了，请稍后再试。")
	}

	if !authorized {
		if h.authService.CheckPassword(text) {
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send("出错了，请稍后再试。")
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send(
				"✅ 验证成功！\n\n🏠 主菜单",
				mainMenuMarkup(),
			)
		}

		// Wrong password
		return c.Send("密码不对，再试一次：")
	}

	return c.Send("用下面的按钮继续：", mainMenuMarkup())
}
