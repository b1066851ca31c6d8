package postgres

import (
	"database/sql"

	"github.com/dts-gxu/CiJingTong/internal/domain"
)

// WordRepo implements repository.CatalogRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new catalog repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// GetAllWords returns the full word catalog ordered by rank.
// Unranked words come last, in insertion order.
func (r *WordRepo) GetAllWords() ([]domain.WordRecord, error) {
	query := `
		SELECT id, word, pinyin, translation, rank
		FROM words
		ORDER BY rank ASC NULLS LAST, created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.WordRecord
	for rows.Next() {
		var w domain.WordRecord
		var rank sql.NullInt64
		if err := rows.Scan(&w.ID, &w.Word, &w.Pinyin, &w.Translation, &rank); err != nil {
			return nil, err
		}
		if rank.Valid {
			r := int(rank.Int64)
			w.Rank = &r
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
