package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	// GetByIDs returns the users whose ids resolve; unknown ids are
	// silently omitted from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]dom.User, error)
	List(ctx context.Context) ([]dom.User, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) (dom.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// Delete removes the user together with their memberships,
	// comments, activities and notifications. Boards stay behind.
	Delete(ctx context.Context, id int64) error
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// A blank email is stored as NULL so the unique index only constrains
// real addresses.
const userColumns = `id, username, COALESCE(email, ''), password_hash, created_at`

func (r *PGUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING ` + userColumns
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, email, passwordHash).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func (r *PGUserRepo) GetByIDs(ctx context.Context, ids []int64) ([]dom.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1) ORDER BY id`, ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *PGUserRepo) List(ctx context.Context) ([]dom.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *PGUserRepo) UpdateProfile(ctx context.Context, id int64, username, email string) (dom.User, error) {
	query := `
		UPDATE users SET username = $2, email = NULLIF($3, '')
		WHERE id = $1
		RETURNING ` + userColumns
	var u dom.User
	err := r.db.QueryRow(ctx, query, id, username, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

func (r *PGUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	return err
}

func (r *PGUserRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Child rows first; no FK cascade is assumed by the schema.
	steps := []string{
		`DELETE FROM notifications WHERE user_id = $1`,
		`DELETE FROM activity_participants WHERE user_id = $1`,
		`DELETE FROM activity_participants WHERE activity_id IN (
			SELECT id FROM activities WHERE organizer_id = $1)`,
		`DELETE FROM activities WHERE organizer_id = $1`,
		`DELETE FROM comments WHERE user_id = $1`,
		`DELETE FROM card_members WHERE user_id = $1`,
		`DELETE FROM board_members WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
