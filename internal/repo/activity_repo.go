package repo

import (
	"context"
	"time"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepo provides activity persistence. Participants live in
// their own table with a unique (activity_id, user_id) pair.
type ActivityRepo interface {
	// Create inserts the activity and its participant rows atomically.
	Create(ctx context.Context, a dom.Activity, participantIDs []int64) (dom.Activity, error)
	GetByID(ctx context.Context, id int64) (dom.Activity, error)
	// ListByUser returns activities the user organizes or participates in.
	ListByUser(ctx context.Context, userID int64) ([]dom.Activity, error)
	ListByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.Activity, error)
	// Update rewrites the activity fields; when participantIDs is
	// non-nil the participant set is replaced in the same transaction.
	Update(ctx context.Context, a dom.Activity, participantIDs []int64) (dom.Activity, error)
	// DeleteCascade removes the activity with its participant rows.
	DeleteCascade(ctx context.Context, id int64) error
	// AddParticipant is idempotent; added is false when the user was
	// already a participant.
	AddParticipant(ctx context.Context, activityID, userID int64) (added bool, err error)
	RemoveParticipant(ctx context.Context, activityID, userID int64) error
}

// PGActivityRepo implements ActivityRepo with Postgres.
type PGActivityRepo struct {
	db *pgxpool.Pool
}

// NewPGActivityRepo returns a new PGActivityRepo.
func NewPGActivityRepo(db *pgxpool.Pool) *PGActivityRepo {
	return &PGActivityRepo{db: db}
}

const activityColumns = `id, title, description, start_time, end_time, type, organizer_id, created_at, updated_at`

func scanActivity(row pgx.Row) (dom.Activity, error) {
	var a dom.Activity
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.StartTime, &a.EndTime,
		&a.Type, &a.OrganizerID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *PGActivityRepo) Create(ctx context.Context, a dom.Activity, participantIDs []int64) (dom.Activity, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Activity{}, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO activities (title, description, start_time, end_time, type, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + activityColumns
	out, err := scanActivity(tx.QueryRow(ctx, query,
		a.Title, a.Description, a.StartTime, a.EndTime, a.Type, a.OrganizerID))
	if err != nil {
		return dom.Activity{}, err
	}
	for _, uid := range participantIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO activity_participants (activity_id, user_id) VALUES ($1, $2)
			 ON CONFLICT (activity_id, user_id) DO NOTHING`,
			out.ID, uid,
		)
		if err != nil {
			return dom.Activity{}, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return dom.Activity{}, err
	}
	out.ParticipantIDs = participantIDs
	return out, nil
}

func (r *PGActivityRepo) GetByID(ctx context.Context, id int64) (dom.Activity, error) {
	a, err := scanActivity(r.db.QueryRow(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1`, id))
	if err != nil {
		return dom.Activity{}, err
	}
	a.ParticipantIDs, err = r.participantIDs(ctx, id)
	return a, err
}

func (r *PGActivityRepo) participantIDs(ctx context.Context, activityID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM activity_participants WHERE activity_id = $1 ORDER BY id`,
		activityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGActivityRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Activity, error) {
	query := `
		SELECT DISTINCT a.id, a.title, a.description, a.start_time, a.end_time,
			a.type, a.organizer_id, a.created_at, a.updated_at
		FROM activities a
		LEFT JOIN activity_participants p ON p.activity_id = a.id
		WHERE a.organizer_id = $1 OR p.user_id = $1
		ORDER BY a.start_time`
	return r.queryActivities(ctx, query, userID)
}

func (r *PGActivityRepo) ListByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.Activity, error) {
	query := `
		SELECT DISTINCT a.id, a.title, a.description, a.start_time, a.end_time,
			a.type, a.organizer_id, a.created_at, a.updated_at
		FROM activities a
		LEFT JOIN activity_participants p ON p.activity_id = a.id
		WHERE (a.organizer_id = $1 OR p.user_id = $1)
			AND a.start_time >= $2 AND a.start_time <= $3
		ORDER BY a.start_time`
	return r.queryActivities(ctx, query, userID, start, end)
}

func (r *PGActivityRepo) queryActivities(ctx context.Context, query string, args ...any) ([]dom.Activity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Activity
	for rows.Next() {
		var a dom.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.StartTime, &a.EndTime,
			&a.Type, &a.OrganizerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ParticipantIDs, err = r.participantIDs(ctx, list[i].ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *PGActivityRepo) Update(ctx context.Context, a dom.Activity, participantIDs []int64) (dom.Activity, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Activity{}, err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE activities
		SET title = $2, description = $3, start_time = $4, end_time = $5, type = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + activityColumns
	out, err := scanActivity(tx.QueryRow(ctx, query,
		a.ID, a.Title, a.Description, a.StartTime, a.EndTime, a.Type))
	if err != nil {
		return dom.Activity{}, err
	}
	if participantIDs != nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM activity_participants WHERE activity_id = $1`, a.ID); err != nil {
			return dom.Activity{}, err
		}
		for _, uid := range participantIDs {
			_, err = tx.Exec(ctx,
				`INSERT INTO activity_participants (activity_id, user_id) VALUES ($1, $2)
				 ON CONFLICT (activity_id, user_id) DO NOTHING`,
				a.ID, uid,
			)
			if err != nil {
				return dom.Activity{}, err
			}
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return dom.Activity{}, err
	}
	if participantIDs != nil {
		out.ParticipantIDs = participantIDs
	} else if out.ParticipantIDs, err = r.participantIDs(ctx, out.ID); err != nil {
		return dom.Activity{}, err
	}
	return out, nil
}

func (r *PGActivityRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM activity_participants WHERE activity_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGActivityRepo) AddParticipant(ctx context.Context, activityID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO activity_participants (activity_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (activity_id, user_id) DO NOTHING`,
		activityID, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGActivityRepo) RemoveParticipant(ctx context.Context, activityID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM activity_participants WHERE activity_id = $1 AND user_id = $2`,
		activityID, userID,
	)
	return err
}
