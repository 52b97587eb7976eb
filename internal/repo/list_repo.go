package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ListRepo provides persistence for board lists.
type ListRepo interface {
	Create(ctx context.Context, l dom.List) (dom.List, error)
	GetByID(ctx context.Context, id int64) (dom.List, error)
	ListByBoard(ctx context.Context, boardID int64) ([]dom.List, error)
	Update(ctx context.Context, id int64, name, color string) (dom.List, error)
	// DeleteCascade removes the list with its cards, card members and
	// comments in one transaction.
	DeleteCascade(ctx context.Context, id int64) error
}

// PGListRepo implements ListRepo with Postgres.
type PGListRepo struct {
	db *pgxpool.Pool
}

// NewPGListRepo returns a new PGListRepo.
func NewPGListRepo(db *pgxpool.Pool) *PGListRepo {
	return &PGListRepo{db: db}
}

func (r *PGListRepo) Create(ctx context.Context, l dom.List) (dom.List, error) {
	query := `
		INSERT INTO lists (board_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, board_id, name, color, created_at`
	var out dom.List
	err := r.db.QueryRow(ctx, query, l.BoardID, l.Name, l.Color).Scan(
		&out.ID, &out.BoardID, &out.Name, &out.Color, &out.CreatedAt,
	)
	return out, err
}

func (r *PGListRepo) GetByID(ctx context.Context, id int64) (dom.List, error) {
	var l dom.List
	err := r.db.QueryRow(ctx,
		`SELECT id, board_id, name, color, created_at FROM lists WHERE id = $1`, id,
	).Scan(&l.ID, &l.BoardID, &l.Name, &l.Color, &l.CreatedAt)
	return l, err
}

func (r *PGListRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.List, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, board_id, name, color, created_at FROM lists WHERE board_id = $1 ORDER BY id`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.List
	for rows.Next() {
		var l dom.List
		if err := rows.Scan(&l.ID, &l.BoardID, &l.Name, &l.Color, &l.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *PGListRepo) Update(ctx context.Context, id int64, name, color string) (dom.List, error) {
	query := `
		UPDATE lists SET name = $2, color = $3
		WHERE id = $1
		RETURNING id, board_id, name, color, created_at`
	var l dom.List
	err := r.db.QueryRow(ctx, query, id, name, color).Scan(
		&l.ID, &l.BoardID, &l.Name, &l.Color, &l.CreatedAt,
	)
	return l, err
}

func (r *PGListRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM comments WHERE card_id IN (SELECT id FROM cards WHERE list_id = $1)`,
		`DELETE FROM card_members WHERE card_id IN (SELECT id FROM cards WHERE list_id = $1)`,
		`DELETE FROM cards WHERE list_id = $1`,
		`DELETE FROM lists WHERE id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
