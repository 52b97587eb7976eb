package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BoardRepo provides board persistence. Multi-row operations run in a
// single transaction so no partial board state is ever observable.
type BoardRepo interface {
	// CreateWithOwner inserts the board and the creator's ADMIN
	// membership atomically.
	CreateWithOwner(ctx context.Context, name string, creatorID int64) (dom.Board, error)
	GetByID(ctx context.Context, id int64) (dom.Board, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Board, error)
	Rename(ctx context.Context, id int64, name string) (dom.Board, error)
	// DeleteCascade removes the board and everything it owns:
	// comments, card members, cards, lists, memberships, then the board.
	DeleteCascade(ctx context.Context, id int64) error
}

// PGBoardRepo implements BoardRepo with Postgres.
type PGBoardRepo struct {
	db *pgxpool.Pool
}

// NewPGBoardRepo returns a new PGBoardRepo.
func NewPGBoardRepo(db *pgxpool.Pool) *PGBoardRepo {
	return &PGBoardRepo{db: db}
}

func (r *PGBoardRepo) CreateWithOwner(ctx context.Context, name string, creatorID int64) (dom.Board, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Board{}, err
	}
	defer tx.Rollback(ctx)

	var b dom.Board
	err = tx.QueryRow(ctx,
		`INSERT INTO boards (name) VALUES ($1) RETURNING id, name, created_at`,
		name,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		return dom.Board{}, err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)`,
		b.ID, creatorID, dom.RoleAdmin,
	)
	if err != nil {
		return dom.Board{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return dom.Board{}, err
	}
	return b, nil
}

func (r *PGBoardRepo) GetByID(ctx context.Context, id int64) (dom.Board, error) {
	var b dom.Board
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM boards WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	return b, err
}

func (r *PGBoardRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Board, error) {
	query := `
		SELECT b.id, b.name, b.created_at
		FROM boards b
		JOIN board_members m ON m.board_id = b.id
		WHERE m.user_id = $1
		ORDER BY b.created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Board
	for rows.Next() {
		var b dom.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *PGBoardRepo) Rename(ctx context.Context, id int64, name string) (dom.Board, error) {
	var b dom.Board
	err := r.db.QueryRow(ctx,
		`UPDATE boards SET name = $2 WHERE id = $1 RETURNING id, name, created_at`,
		id, name,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	return b, err
}

func (r *PGBoardRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Child rows first; no FK cascade is assumed by the schema.
	steps := []string{
		`DELETE FROM comments WHERE card_id IN (
			SELECT c.id FROM cards c JOIN lists l ON c.list_id = l.id WHERE l.board_id = $1)`,
		`DELETE FROM card_members WHERE card_id IN (
			SELECT c.id FROM cards c JOIN lists l ON c.list_id = l.id WHERE l.board_id = $1)`,
		`DELETE FROM cards WHERE list_id IN (SELECT id FROM lists WHERE board_id = $1)`,
		`DELETE FROM lists WHERE board_id = $1`,
		`DELETE FROM board_members WHERE board_id = $1`,
		`DELETE FROM boards WHERE id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
