package postgres

import (
	"database/sql"

	"github.com/dts-gxu/CiJingTong/internal/memory"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetLearningTargets returns the user's custom daily/session targets,
// or nil if the user never changed the defaults.
func (r *UserRepo) GetLearningTargets(userID int64) (*memory.Limits, error) {
	var daily, session sql.NullInt64
	query := `SELECT daily_target, session_target FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&daily, &session)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !daily.Valid || !session.Valid {
		return nil, nil
	}

	return &memory.Limits{Daily: int(daily.Int64), Session: int(session.Int64)}, nil
}

// SaveLearningTargets stores custom daily/session targets for the user
func (r *UserRepo) SaveLearningTargets(userID int64, limits memory.Limits) error {
	query := `
		UPDATE users
		SET daily_target = $2, session_target = $3
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID, limits.Daily, limits.Session)
	return err
}
