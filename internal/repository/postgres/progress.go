package postgres

import (
	"database/sql"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"github.com/lib/pq"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// GetStatusMap loads all per-word memory states for the user
func (r *ProgressRepo) GetStatusMap(userID int64) (domain.StatusMap, error) {
	query := `
		SELECT word_id, stage, reviews, correct_reviews,
		       next_review_time, last_review_time, first_learn_time
		FROM word_status
		WHERE user_id = $1
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statusMap := domain.StatusMap{}
	for rows.Next() {
		var wordID string
		var status domain.MemoryStatus
		var next, last, first sql.NullTime
		if err := rows.Scan(&wordID, &status.Stage, &status.Reviews, &status.CorrectReviews, &next, &last, &first); err != nil {
			return nil, err
		}
		if next.Valid {
			t := next.Time
			status.NextReviewTime = &t
		}
		if last.Valid {
			t := last.Time
			status.LastReviewTime = &t
		}
		if first.Valid {
			t := first.Time
			status.FirstLearnTime = &t
		}
		statusMap[wordID] = status
	}

	return statusMap, rows.Err()
}

// SaveStatuses upserts the given per-word states for the user.
// Callers pass only the words touched by the current round.
func (r *ProgressRepo) SaveStatuses(userID int64, statuses map[string]domain.MemoryStatus) error {
	if len(statuses) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO word_status (
			user_id, word_id, stage, reviews, correct_reviews,
			next_review_time, last_review_time, first_learn_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, word_id)
		DO UPDATE SET
			stage = EXCLUDED.stage,
			reviews = EXCLUDED.reviews,
			correct_reviews = EXCLUDED.correct_reviews,
			next_review_time = EXCLUDED.next_review_time,
			last_review_time = EXCLUDED.last_review_time,
			first_learn_time = EXCLUDED.first_learn_time
	`

	for wordID, status := range statuses {
		_, err := tx.Exec(query, userID, wordID,
			status.Stage, status.Reviews, status.CorrectReviews,
			nullTime(status.NextReviewTime), nullTime(status.LastReviewTime), nullTime(status.FirstLearnTime),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetProgress loads the user's aggregate progress, or nil if none exists yet
func (r *ProgressRepo) GetProgress(userID int64) (*domain.LearningProgress, error) {
	query := `
		SELECT total_words_learned, words_at_stage,
		       daily_learned_count, current_session_count, last_learn_date
		FROM user_progress
		WHERE user_id = $1
	`

	progress := domain.NewLearningProgress()
	var stages []int64
	err := r.db.QueryRow(query, userID).Scan(
		&progress.TotalWordsLearned,
		pq.Array(&stages),
		&progress.DailyLearnedCount,
		&progress.CurrentSessionCount,
		&progress.LastLearnDate,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	progress.WordsAtStage = make([]int, len(stages))
	for i, n := range stages {
		progress.WordsAtStage[i] = int(n)
	}
	progress.EnsureHistogram()

	return progress, nil
}

// SaveProgress upserts the aggregate progress. Between two devices syncing
// the same user, the payload with the latest sync time wins.
func (r *ProgressRepo) SaveProgress(userID int64, progress *domain.LearningProgress, syncTime time.Time) error {
	stages := make([]int64, len(progress.WordsAtStage))
	for i, n := range progress.WordsAtStage {
		stages[i] = int64(n)
	}

	query := `
		INSERT INTO user_progress (
			user_id, total_words_learned, words_at_stage,
			daily_learned_count, current_session_count, last_learn_date, last_sync_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET
			total_words_learned = EXCLUDED.total_words_learned,
			words_at_stage = EXCLUDED.words_at_stage,
			daily_learned_count = EXCLUDED.daily_learned_count,
			current_session_count = EXCLUDED.current_session_count,
			last_learn_date = EXCLUDED.last_learn_date,
			last_sync_time = EXCLUDED.last_sync_time
		WHERE user_progress.last_sync_time <= EXCLUDED.last_sync_time
	`
	_, err := r.db.Exec(query, userID,
		progress.TotalWordsLearned, pq.Array(stages),
		progress.DailyLearnedCount, progress.CurrentSessionCount,
		progress.LastLearnDate, syncTime,
	)
	return err
}

// ResetSessionCounts zeroes every user's session counter. Used by the daily
// rollover job; the quota guard also resets lazily on the next check.
func (r *ProgressRepo) ResetSessionCounts() error {
	query := `UPDATE user_progress SET current_session_count = 0`
	_, err := r.db.Exec(query)
	return err
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
