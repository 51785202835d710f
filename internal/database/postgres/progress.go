package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/logger"
	"github.com/osse101/SkillQuest_Go/internal/repository"
)

const learnerColumns = `learner_id, display_name, total_xp, current_level, xp_gained_today, last_xp_gain, created_at`

// ProgressRepository implements repository.Progress for PostgreSQL
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLearner(row rowScanner) (*domain.Learner, error) {
	var l domain.Learner
	err := row.Scan(
		&l.LearnerID,
		&l.DisplayName,
		&l.TotalXP,
		&l.CurrentLevel,
		&l.XPGainedToday,
		&l.LastXPGain,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLearner retrieves a learner's XP state (returns nil, nil if not found)
func (r *ProgressRepository) GetLearner(ctx context.Context, learnerID string) (*domain.Learner, error) {
	query := `SELECT ` + learnerColumns + ` FROM learners WHERE learner_id = $1`

	l, err := scanLearner(r.db.QueryRow(ctx, query, learnerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLearner, err)
	}
	return l, nil
}

// GetTopLearners returns learners ordered by total XP, oldest first on ties
func (r *ProgressRepository) GetTopLearners(ctx context.Context, limit int) ([]domain.Learner, error) {
	query := `
		SELECT ` + learnerColumns + `
		FROM learners
		ORDER BY total_xp DESC, created_at ASC, learner_id ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopLearners, err)
	}
	defer rows.Close()

	learners := make([]domain.Learner, 0, limit)
	for rows.Next() {
		l, err := scanLearner(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanLearner, err)
		}
		learners = append(learners, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return learners, nil
}

// ResetDailyXP clears xp_gained_today for every learner
func (r *ProgressRepository) ResetDailyXP(ctx context.Context) (int64, error) {
	query := `UPDATE learners SET xp_gained_today = 0 WHERE xp_gained_today > 0`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToResetDailyXP, err)
	}

	affected := tag.RowsAffected()
	logger.FromContext(ctx).Info(LogMsgResetDailyXP, "learners_reset", affected)
	return affected, nil
}

// BeginProgressTx starts a transaction for an XP award
func (r *ProgressRepository) BeginProgressTx(ctx context.Context) (repository.ProgressTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &progressTx{tx: tx}, nil
}

// progressTx implements repository.ProgressTx
type progressTx struct {
	tx pgx.Tx
}

func (t *progressTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *progressTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (t *progressTx) GetOrCreateLearnerForUpdate(ctx context.Context, learnerID, displayName string) (*domain.Learner, error) {
	ensure := `
		INSERT INTO learners (learner_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (learner_id) DO NOTHING
	`
	if _, err := t.tx.Exec(ctx, ensure, learnerID, displayName); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsureLearnerRow, err)
	}

	query := `SELECT ` + learnerColumns + ` FROM learners WHERE learner_id = $1 FOR UPDATE`
	l, err := scanLearner(t.tx.QueryRow(ctx, query, learnerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLearnerForUpdate, err)
	}
	return l, nil
}

func (t *progressTx) UpdateLearner(ctx context.Context, learner *domain.Learner) error {
	query := `
		UPDATE learners SET
			display_name = COALESCE(NULLIF($2, ''), display_name),
			total_xp = $3,
			current_level = $4,
			xp_gained_today = $5,
			last_xp_gain = $6
		WHERE learner_id = $1
	`

	tag, err := t.tx.Exec(ctx, query,
		learner.LearnerID,
		learner.DisplayName,
		learner.TotalXP,
		learner.CurrentLevel,
		learner.XPGainedToday,
		learner.LastXPGain,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLearner, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLearner, domain.ErrLearnerNotFound)
	}
	return nil
}

func (t *progressTx) RecordXPEvent(ctx context.Context, event *domain.XPEvent) error {
	query := `
		INSERT INTO xp_events (id, learner_id, activity, xp_amount, metadata, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	metadataJSON, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalMetadata, err)
	}

	_, err = t.tx.Exec(ctx, query,
		event.ID,
		event.LearnerID,
		event.Activity,
		event.XPAmount,
		metadataJSON,
		event.RecordedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation {
			return fmt.Errorf("%s: %w", ErrMsgFailedToRecordXPEvent, domain.ErrLearnerNotFound)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordXPEvent, err)
	}

	return nil
}
