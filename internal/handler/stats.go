package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var stageNames = []string{
	"未学习",
	"30分钟",
	"1天",
	"3天",
	"7天",
	"15天+",
}

// handleStats shows the per-stage learning overview
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	stats, err := h.statsService.Overview(userID)
	if err != nil {
		h.logger.Error("Failed to load stats",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return c.Send("出错了，请稍后再试。")
	}

	c.Respond()
	return c.Edit(formatStats(stats, time.Now()), backMarkup())
}

// formatStats renders the stats overview message
func formatStats(stats *domain.LearningStats, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 学习统计\n\n词库共 %d 个词，已学 %d 个\n", stats.TotalWords, stats.LearnedWords)
	if stats.LastLearnDate != "" {
		fmt.Fprintf(&b, "最近学习：%s，当天新学 %d 个\n", domain.DisplayDay(stats.LastLearnDate, now), stats.DailyLearnedCount)
	}
	b.WriteString("\n")

	for stage, count := range stats.StageDistribution {
		name := fmt.Sprintf("阶段%d", stage)
		if stage < len(stageNames) {
			name = stageNames[stage]
		}
		fmt.Fprintf(&b, "%s %s %d\n", name, progressBar(count, stats.TotalWords), count)
	}

	return b.String()
}

// progressBar renders a ten-slot bar for count out of total
func progressBar(count, total int) string {
	const slots = 10
	if total <= 0 {
		return strings.Repeat("░", slots)
	}

	filled := count * slots / total
	if filled == 0 && count > 0 {
		filled = 1
	}
	if filled > slots {
		filled = slots
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", slots-filled)
}
