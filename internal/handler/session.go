package handler

import (
	"fmt"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLearn starts a new study round
func (h *Handler) handleLearn(c tele.Context) error {
	userID := c.Sender().ID

	batch, check, err := h.learningService.NextGroup(userID, h.groupSize)
	if err != nil {
		h.logger.Error("Failed to select study group",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return c.Send("出错了，请稍后再试。")
	}

	if !check.CanLearn {
		c.Respond()
		return c.Edit(check.Message, backMarkup())
	}

	if len(batch.Words) == 0 {
		c.Respond()
		return c.Edit("暂时没有可学习的词语，去休息一下吧。", backMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State:    domain.StateStudying,
		Batch:    &batch,
		Position: 0,
		Results:  make([]domain.AnswerResult, 0, len(batch.Words)),
	})

	h.logger.Info("Study round started",
		zap.Int64("user_id", userID),
		zap.Int("words", len(batch.Words)),
		zap.Int("reviews", batch.ReviewCount),
		zap.Int("new", batch.NewCount),
	)

	c.Respond()
	return c.Edit(cardText(&batch, 0, false), cardMarkup(false))
}

// handleShowAnswer reveals pinyin and translation on the current card
func (h *Handler) handleShowAnswer(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateStudying || state.Batch == nil {
		c.Respond()
		return c.Edit("本轮已结束。", backMarkup())
	}

	state.Revealed = true
	h.SetState(userID, state)

	c.Respond()
	return c.Edit(cardText(state.Batch, state.Position, true), cardMarkup(true))
}

// handleAnswer records one answer and moves to the next card.
// Peeking at the answer first counts as not knowing the word.
func (h *Handler) handleAnswer(knew bool) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID
		state := h.GetState(userID)

		if state.State != domain.StateStudying || state.Batch == nil {
			c.Respond()
			return c.Edit("本轮已结束。", backMarkup())
		}

		isCorrect := knew && !state.Revealed
		word := state.Batch.Words[state.Position]
		state.Results = append(state.Results, domain.AnswerResult{
			WordID:    word.ID,
			IsCorrect: isCorrect,
		})

		state.Position++
		state.Revealed = false

		if state.Position < len(state.Batch.Words) {
			h.SetState(userID, state)
			c.Respond()
			return c.Edit(cardText(state.Batch, state.Position, false), cardMarkup(false))
		}

		return h.finishRound(c, userID, state)
	}
}

// handleQuit ends the round early, keeping the answers given so far
func (h *Handler) handleQuit(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateStudying || len(state.Results) == 0 {
		// Nothing answered yet: no state was mutated, nothing to submit.
		h.ResetState(userID)
		c.Respond()
		return c.Edit("本轮已取消。", backMarkup())
	}

	return h.finishRound(c, userID, state)
}

// finishRound submits the collected answers and shows the round summary
func (h *Handler) finishRound(c tele.Context, userID int64, state *domain.StateData) error {
	summary, err := h.learningService.SubmitResults(userID, state.Results)
	h.ResetState(userID)

	if err != nil {
		h.logger.Error("Failed to submit round results",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return c.Send("提交结果失败，请稍后再试。")
	}

	c.Respond()
	return c.Edit(summaryText(state.Batch, summary), backMarkup())
}

// cardText renders one study card
func cardText(batch *domain.LearningBatch, position int, revealed bool) string {
	word := batch.Words[position]

	text := fmt.Sprintf("📖 第 %d/%d 个\n\n%s", position+1, len(batch.Words), word.Word)
	if revealed {
		text += fmt.Sprintf("\n\n%s\n%s", word.Pinyin, word.Translation)
	} else {
		text += "\n\n想一想：拼音和意思是什么？"
	}
	return text
}

// summaryText renders the end-of-round summary
func summaryText(batch *domain.LearningBatch, summary domain.PracticeSummary) string {
	return fmt.Sprintf(
		"🎉 本轮完成！\n\n答对 %d / %d（%d%%）\n复习 %d 个，新词 %d 个",
		summary.CorrectCount, summary.TotalCount, summary.CorrectRate,
		batch.ReviewCount, batch.NewCount,
	)
}
