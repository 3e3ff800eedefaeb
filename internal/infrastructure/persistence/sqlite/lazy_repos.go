package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/repository"
)

// LazyDialogJournal opens the database on the first journal operation.
type LazyDialogJournal struct {
	provider port.DatabaseProvider
	repo     repository.DialogJournal
	once     sync.Once
	initErr  error
}

// NewLazyDialogJournal creates a lazy-loading dialog journal.
func NewLazyDialogJournal(provider port.DatabaseProvider) repository.DialogJournal {
	return &LazyDialogJournal{provider: provider}
}

func (r *LazyDialogJournal) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewDialogJournalRepository(db)
	})
	return r.initErr
}

func (r *LazyDialogJournal) Append(ctx context.Context, record *entity.DialogRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Append(ctx, record)
}

func (r *LazyDialogJournal) FindByID(ctx context.Context, id entity.DialogID) (*entity.DialogRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByID(ctx, id)
}

func (r *LazyDialogJournal) Recent(ctx context.Context, limit int) ([]*entity.DialogRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyDialogJournal) ListByWindow(ctx context.Context, windowID entity.WindowID) ([]*entity.DialogRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListByWindow(ctx, windowID)
}

func (r *LazyDialogJournal) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteBefore(ctx, cutoff)
}

func (r *LazyDialogJournal) DeleteAll(ctx context.Context) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteAll(ctx)
}
