package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/repository"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

const journalColumns = `id, window_id, kind, message, default_value, accepted, result_text, resolved_by, opened_at, closed_at`

type dialogJournalRepo struct {
	db *sql.DB
}

// NewDialogJournalRepository creates a new SQLite-backed dialog journal.
func NewDialogJournalRepository(db *sql.DB) repository.DialogJournal {
	return &dialogJournalRepo{db: db}
}

func (r *dialogJournalRepo) Append(ctx context.Context, record *entity.DialogRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("dialog_id", string(record.ID)).
		Str("window_id", string(record.WindowID)).
		Str("resolved_by", string(record.ResolvedBy)).
		Msg("journaling dialog")

	var text sql.NullString
	if record.HasText {
		text = sql.NullString{String: record.Text, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dialog_journal (`+journalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(record.ID),
		string(record.WindowID),
		string(record.Kind),
		record.Message,
		record.DefaultValue,
		boolToInt(record.Accepted),
		text,
		string(record.ResolvedBy),
		toMillis(record.OpenedAt),
		toMillis(record.ClosedAt),
	)
	if err != nil {
		return fmt.Errorf("insert dialog %s: %w", record.ID, err)
	}
	return nil
}

func (r *dialogJournalRepo) FindByID(ctx context.Context, id entity.DialogID) (*entity.DialogRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+journalColumns+` FROM dialog_journal WHERE id = ?`, string(id))

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (r *dialogJournalRepo) Recent(ctx context.Context, limit int) ([]*entity.DialogRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM dialog_journal ORDER BY closed_at DESC, opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (r *dialogJournalRepo) ListByWindow(ctx context.Context, windowID entity.WindowID) ([]*entity.DialogRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM dialog_journal WHERE window_id = ? ORDER BY opened_at ASC`, string(windowID))
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (r *dialogJournalRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dialog_journal WHERE closed_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *dialogJournalRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dialog_journal`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*entity.DialogRecord, error) {
	var (
		id, windowID, kind, resolvedBy string
		record                         entity.DialogRecord
		accepted                       int64
		text                           sql.NullString
		openedAt, closedAt             int64
	)
	if err := row.Scan(&id, &windowID, &kind, &record.Message, &record.DefaultValue,
		&accepted, &text, &resolvedBy, &openedAt, &closedAt); err != nil {
		return nil, err
	}

	record.ID = entity.DialogID(id)
	record.WindowID = entity.WindowID(windowID)
	record.Kind = entity.DialogKind(kind)
	record.Accepted = accepted != 0
	record.Text = text.String
	record.HasText = text.Valid
	record.ResolvedBy = entity.Resolution(resolvedBy)
	record.OpenedAt = fromMillis(openedAt)
	record.ClosedAt = fromMillis(closedAt)
	return &record, nil
}

func collectRecords(rows *sql.Rows) ([]*entity.DialogRecord, error) {
	defer func() { _ = rows.Close() }()

	var records []*entity.DialogRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
