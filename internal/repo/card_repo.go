package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CardRepo provides card persistence.
type CardRepo interface {
	// CreateWithMember inserts the card and assigns the creator as a
	// card member atomically.
	CreateWithMember(ctx context.Context, c dom.Card, creatorID int64) (dom.Card, error)
	GetByID(ctx context.Context, id int64) (dom.Card, error)
	ListByList(ctx context.Context, listID int64) ([]dom.Card, error)
	Update(ctx context.Context, c dom.Card) (dom.Card, error)
	ListMembers(ctx context.Context, cardID int64) ([]dom.CardMember, error)
	// DeleteCascade removes the card with its comments and members.
	DeleteCascade(ctx context.Context, id int64) error
}

// PGCardRepo implements CardRepo with Postgres.
type PGCardRepo struct {
	db *pgxpool.Pool
}

// NewPGCardRepo returns a new PGCardRepo.
func NewPGCardRepo(db *pgxpool.Pool) *PGCardRepo {
	return &PGCardRepo{db: db}
}

const cardColumns = `id, list_id, title, tag, description, created_at, updated_at`

func (r *PGCardRepo) CreateWithMember(ctx context.Context, c dom.Card, creatorID int64) (dom.Card, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Card{}, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO cards (list_id, title, tag, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + cardColumns
	var out dom.Card
	err = tx.QueryRow(ctx, query, c.ListID, c.Title, c.Tag, c.Description).Scan(
		&out.ID, &out.ListID, &out.Title, &out.Tag, &out.Description, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return dom.Card{}, err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO card_members (card_id, user_id) VALUES ($1, $2)`,
		out.ID, creatorID,
	)
	if err != nil {
		return dom.Card{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return dom.Card{}, err
	}
	return out, nil
}

func (r *PGCardRepo) GetByID(ctx context.Context, id int64) (dom.Card, error) {
	var c dom.Card
	err := r.db.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = $1`, id,
	).Scan(&c.ID, &c.ListID, &c.Title, &c.Tag, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PGCardRepo) ListByList(ctx context.Context, listID int64) ([]dom.Card, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE list_id = $1 ORDER BY id`, listID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Card
	for rows.Next() {
		var c dom.Card
		if err := rows.Scan(&c.ID, &c.ListID, &c.Title, &c.Tag, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCardRepo) Update(ctx context.Context, c dom.Card) (dom.Card, error) {
	query := `
		UPDATE cards SET list_id = $2, title = $3, tag = $4, description = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + cardColumns
	var out dom.Card
	err := r.db.QueryRow(ctx, query, c.ID, c.ListID, c.Title, c.Tag, c.Description).Scan(
		&out.ID, &out.ListID, &out.Title, &out.Tag, &out.Description, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGCardRepo) ListMembers(ctx context.Context, cardID int64) ([]dom.CardMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, card_id, user_id FROM card_members WHERE card_id = $1 ORDER BY id`, cardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.CardMember
	for rows.Next() {
		var m dom.CardMember
		if err := rows.Scan(&m.ID, &m.CardID, &m.UserID); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGCardRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM comments WHERE card_id = $1`,
		`DELETE FROM card_members WHERE card_id = $1`,
		`DELETE FROM cards WHERE id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
