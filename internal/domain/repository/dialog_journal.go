package repository

import (
	"context"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
)

// DialogJournal persists released dialogs for later inspection.
type DialogJournal interface {
	Append(ctx context.Context, record *entity.DialogRecord) error
	FindByID(ctx context.Context, id entity.DialogID) (*entity.DialogRecord, error)

	// Recent returns the newest records first.
	Recent(ctx context.Context, limit int) ([]*entity.DialogRecord, error)
	ListByWindow(ctx context.Context, windowID entity.WindowID) ([]*entity.DialogRecord, error)

	// DeleteBefore removes records closed before the cutoff and returns how many were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
