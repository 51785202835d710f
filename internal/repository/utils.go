package repository

import (
	"context"
	"errors"

	"github.com/osse101/SkillQuest_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx ProgressTx) {
	if err := tx.Rollback(ctx); err != nil {
		if !errors.Is(err, ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
