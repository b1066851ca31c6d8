package handler

import (
	"sync"

	"github.com/dts-gxu/CiJingTong/internal/domain"
	"github.com/dts-gxu/CiJingTong/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	authService     *service.AuthService
	learningService *service.LearningService
	statsService    *service.StatsService
	groupSize       int
	logger          *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	learningService *service.LearningService,
	statsService *service.StatsService,
	groupSize int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		authService:     authService,
		learningService: learningService,
		statsService:    statsService,
		groupSize:       groupSize,
		logger:          logger,
		states:          make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/targets", h.handleSetTargets)

	// Text messages (password entry)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLearn, h.handleLearn)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnTargets, h.handleShowTargets)
	h.bot.Handle(&btnShowAnswer, h.handleShowAnswer)
	h.bot.Handle(&btnKnow, h.handleAnswer(true))
	h.bot.Handle(&btnForgot, h.handleAnswer(false))
	h.bot.Handle(&btnQuit, h.handleQuit)
	h.bot.Handle(&btnMainMenu, h.handleStart)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnLearn = tele.Btn{
		Unique: "learn",
		Text:   "📖 开始学习",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 学习统计",
	}
	btnTargets = tele.Btn{
		Unique: "targets",
		Text:   "⚙️ 学习目标",
	}
	btnShowAnswer = tele.Btn{
		Unique: "show_answer",
		Text:   "💡 看答案",
	}
	btnKnow = tele.Btn{
		Unique: "know",
		Text:   "✅ 认识",
	}
	btnForgot = tele.Btn{
		Unique: "forgot",
		Text:   "❌ 忘了",
	}
	btnQuit = tele.Btn{
		Unique: "quit",
		Text:   "🚪 结束本轮",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 主菜单",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLearn),
		menu.Row(btnStats, btnTargets),
	)
	return menu
}

// cardMarkup returns the keyboard shown under a study card
func cardMarkup(revealed bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	if revealed {
		menu.Inline(
			menu.Row(btnKnow, btnForgot),
			menu.Row(btnQuit),
		)
	} else {
		menu.Inline(
			menu.Row(btnKnow, btnForgot),
			menu.Row(btnShowAnswer, btnQuit),
		)
	}
	return menu
}

// backMarkup returns a keyboard with only the main menu button
func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnMainMenu))
	return menu
}
