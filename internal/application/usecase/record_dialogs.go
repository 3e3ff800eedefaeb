package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/repository"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

const defaultJournalLimit = 50

// RecordDialogsUseCase journals every released dialog and serves the history.
type RecordDialogsUseCase struct {
	journal repository.DialogJournal
}

var _ port.DialogObserver = (*RecordDialogsUseCase)(nil)

// NewRecordDialogsUseCase creates a new dialog journal use case.
func NewRecordDialogsUseCase(journal repository.DialogJournal) *RecordDialogsUseCase {
	return &RecordDialogsUseCase{journal: journal}
}

func (*RecordDialogsUseCase) DialogOpened(context.Context, entity.DialogSnapshot) {}

// DialogClosed appends the dialog to the journal. Storage failures are logged
// and never reach the engine.
func (uc *RecordDialogsUseCase) DialogClosed(ctx context.Context, dialog entity.DialogSnapshot) {
	record := entity.NewDialogRecord(dialog)
	if err := record.Validate(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("dialog_id", string(dialog.ID)).Msg("skipping malformed dialog record")
		return
	}
	if err := uc.journal.Append(ctx, record); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("dialog_id", string(dialog.ID)).Msg("failed to journal dialog")
	}
}

// Recent returns the newest journal entries. A non-positive limit uses the default.
func (uc *RecordDialogsUseCase) Recent(ctx context.Context, limit int) ([]*entity.DialogRecord, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	records, err := uc.journal.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list dialog journal: %w", err)
	}
	return records, nil
}

// ForWindow returns every journaled dialog of a window, oldest first.
func (uc *RecordDialogsUseCase) ForWindow(ctx context.Context, windowID entity.WindowID) ([]*entity.DialogRecord, error) {
	records, err := uc.journal.ListByWindow(ctx, windowID)
	if err != nil {
		return nil, fmt.Errorf("list dialogs of window %s: %w", windowID, err)
	}
	return records, nil
}

// Purge deletes entries older than maxAge; maxAge <= 0 deletes everything.
func (uc *RecordDialogsUseCase) Purge(ctx context.Context, maxAge time.Duration, now time.Time) (int64, error) {
	if maxAge <= 0 {
		n, err := uc.journal.DeleteAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("purge dialog journal: %w", err)
		}
		return n, nil
	}
	n, err := uc.journal.DeleteBefore(ctx, now.Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("purge dialog journal: %w", err)
	}
	return n, nil
}
