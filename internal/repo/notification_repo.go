package repo

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepo provides notification persistence.
type NotificationRepo interface {
	Create(ctx context.Context, userID int64, message string) (dom.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Notification, error)
	// MarkSeen sets seen=true; pgx.ErrNoRows when the id does not exist.
	MarkSeen(ctx context.Context, id int64) error
}

// PGNotificationRepo implements NotificationRepo with Postgres.
type PGNotificationRepo struct {
	db *pgxpool.Pool
}

// NewPGNotificationRepo returns a new PGNotificationRepo.
func NewPGNotificationRepo(db *pgxpool.Pool) *PGNotificationRepo {
	return &PGNotificationRepo{db: db}
}

func (r *PGNotificationRepo) Create(ctx context.Context, userID int64, message string) (dom.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, message)
		VALUES ($1, $2)
		RETURNING id, user_id, message, seen, created_at`
	var n dom.Notification
	err := r.db.QueryRow(ctx, query, userID, message).Scan(
		&n.ID, &n.UserID, &n.Message, &n.Seen, &n.CreatedAt,
	)
	return n, err
}

func (r *PGNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, message, seen, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Notification
	for rows.Next() {
		var n dom.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Seen, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNotificationRepo) MarkSeen(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET seen = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
