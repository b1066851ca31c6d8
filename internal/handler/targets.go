package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dts-gxu/CiJingTong/internal/memory"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleShowTargets shows the user's current daily/session targets
func (h *Handler) handleShowTargets(c tele.Context) error {
	userID := c.Sender().ID

	limits, err := h.learningService.Targets(userID)
	if err != nil {
		h.logger.Error("Failed to load targets",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return c.Send("出错了，请稍后再试。")
	}

	c.Respond()
	return c.Edit(fmt.Sprintf(
		"⚙️ 学习目标\n\n每日新词：%d 个\n每轮新词：%d 个\n\n修改请发送：/targets <每日> <每轮>\n例如：/targets 30 15",
		limits.Daily, limits.Session,
	), backMarkup())
}

// handleSetTargets handles "/targets <daily> <session>"
func (h *Handler) handleSetTargets(c tele.Context) error {
	userID := c.Sender().ID

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil || !authorized {
		return c.Send("请先通过 /start 登录。")
	}

	limits, err := parseTargets(c.Message().Payload)
	if err != nil {
		return c.Send("格式：/targets <每日> <每轮>，两个都要是正整数。")
	}

	if err := h.learningService.UpdateTargets(userID, limits); err != nil {
		h.logger.Error("Failed to update targets",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("保存失败，请稍后再试。")
	}

	h.logger.Info("Targets updated",
		zap.Int64("user_id", userID),
		zap.Int("daily", limits.Daily),
		zap.Int("session", limits.Session),
	)

	return c.Send(fmt.Sprintf("✅ 已更新：每日 %d 个，每轮 %d 个。", limits.Daily, limits.Session), backMarkup())
}

// parseTargets parses "<daily> <session>" from the command payload
func parseTargets(payload string) (memory.Limits, error) {
	fields := strings.Fields(payload)
	if len(fields) != 2 {
		return memory.Limits{}, fmt.Errorf("expected two numbers, got %d", len(fields))
	}

	daily, err := strconv.Atoi(fields[0])
	if err != nil {
		return memory.Limits{}, fmt.Errorf("invalid daily target: %w", err)
	}
	session, err := strconv.Atoi(fields[1])
	if err != nil {
		return memory.Limits{}, fmt.Errorf("invalid session target: %w", err)
	}
	if daily <= 0 || session <= 0 {
		return memory.Limits{}, fmt.Errorf("targets must be positive")
	}

	return memory.Limits{Daily: daily, Session: session}, nil
}
