package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepo provides comment persistence.
type CommentRepo interface {
	Create(ctx context.Context, c dom.Comment) (dom.Comment, error)
	GetByID(ctx context.Context, id int64) (dom.Comment, error)
	ListByCard(ctx context.Context, cardID int64) ([]dom.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// PGCommentRepo implements CommentRepo with Postgres.
type PGCommentRepo struct {
	db *pgxpool.Pool
}

// NewPGCommentRepo returns a new PGCommentRepo.
func NewPGCommentRepo(db *pgxpool.Pool) *PGCommentRepo {
	return &PGCommentRepo{db: db}
}

func (r *PGCommentRepo) Create(ctx context.Context, c dom.Comment) (dom.Comment, error) {
	query := `
		INSERT INTO comments (card_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, card_id, user_id, content, created_at`
	var out dom.Comment
	err := r.db.QueryRow(ctx, query, c.CardID, c.UserID, c.Content).Scan(
		&out.ID, &out.CardID, &out.UserID, &out.Content, &out.CreatedAt,
	)
	return out, err
}

func (r *PGCommentRepo) GetByID(ctx context.Context, id int64) (dom.Comment, error) {
	var c dom.Comment
	err := r.db.QueryRow(ctx,
		`SELECT id, card_id, user_id, content, created_at FROM comments WHERE id = $1`, id,
	).Scan(&c.ID, &c.CardID, &c.UserID, &c.Content, &c.CreatedAt)
	return c, err
}

func (r *PGCommentRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Comment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, card_id, user_id, content, created_at FROM comments WHERE card_id = $1 ORDER BY created_at`,
		cardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Comment
	for rows.Next() {
		var c dom.Comment
		if err := rows.Scan(&c.ID, &c.CardID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCommentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}
