package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MemberRepo is the board membership roster. (board_id, user_id) is
// unique; Upsert never produces a second row for the same pair.
type MemberRepo interface {
	// Upsert inserts or updates the membership in one statement so
	// concurrent calls for the same pair serialize on the unique index.
	// A blank role defaults to MEMBER on insert and keeps the stored
	// role on update.
	Upsert(ctx context.Context, boardID, userID int64, role string) (dom.Membership, error)
	RoleOf(ctx context.Context, boardID, userID int64) (dom.Role, error)
	ListByBoard(ctx context.Context, boardID int64) ([]dom.Membership, error)
	Remove(ctx context.Context, boardID, userID int64) error
}

// PGMemberRepo implements MemberRepo with Postgres.
type PGMemberRepo struct {
	db *pgxpool.Pool
}

// NewPGMemberRepo returns a new PGMemberRepo.
func NewPGMemberRepo(db *pgxpool.Pool) *PGMemberRepo {
	return &PGMemberRepo{db: db}
}

func (r *PGMemberRepo) Upsert(ctx context.Context, boardID, userID int64, role string) (dom.Membership, error) {
	query := `
		INSERT INTO board_members (board_id, user_id, role)
		VALUES ($1, $2, CASE WHEN $3 = '' THEN 'MEMBER' ELSE $3 END)
		ON CONFLICT (board_id, user_id)
		DO UPDATE SET role = CASE WHEN $3 = '' THEN board_members.role ELSE $3 END
		RETURNING id, board_id, user_id, role`
	var m dom.Membership
	err := r.db.QueryRow(ctx, query, boardID, userID, role).Scan(
		&m.ID, &m.BoardID, &m.UserID, &m.Role,
	)
	return m, err
}

func (r *PGMemberRepo) RoleOf(ctx context.Context, boardID, userID int64) (dom.Role, error) {
	var role dom.Role
	err := r.db.QueryRow(ctx,
		`SELECT role FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardID, userID,
	).Scan(&role)
	return role, err
}

func (r *PGMemberRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.Membership, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, board_id, user_id, role FROM board_members WHERE board_id = $1 ORDER BY id`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Membership
	for rows.Next() {
		var m dom.Membership
		if err := rows.Scan(&m.ID, &m.BoardID, &m.UserID, &m.Role); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGMemberRepo) Remove(ctx context.Context, boardID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardID, userID,
	)
	return err
}
