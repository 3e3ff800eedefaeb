package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/repository"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/persistence/sqlite"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openJournal(t *testing.T) (context.Context, repository.DialogJournal) {
	t.Helper()
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "journal.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return ctx, sqlite.NewDialogJournalRepository(db)
}

func TestDialogJournal_AppendAndFind(t *testing.T) {
	ctx, repo := openJournal(t)

	opened := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	prompt := &entity.DialogRecord{
		ID:           "d1",
		WindowID:     "w1",
		Kind:         entity.DialogPrompt,
		Message:      "Enter name",
		DefaultValue: "Bob",
		Accepted:     true,
		Text:         "",
		HasText:      true,
		ResolvedBy:   entity.ResolvedByController,
		OpenedAt:     opened,
		ClosedAt:     opened.Add(2 * time.Second),
	}
	require.NoError(t, repo.Append(ctx, prompt))

	got, err := repo.FindByID(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.DialogPrompt, got.Kind)
	assert.Equal(t, "Bob", got.DefaultValue)
	assert.True(t, got.Accepted)
	assert.True(t, got.HasText, "empty prompt answer must stay distinct from null")
	assert.Empty(t, got.Text)
	assert.True(t, got.OpenedAt.Equal(opened))
	assert.Equal(t, 2*time.Second, got.Duration())

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDialogJournal_RejectsInvalid(t *testing.T) {
	ctx, repo := openJournal(t)
	err := repo.Append(ctx, &entity.DialogRecord{ID: "d1", Kind: entity.DialogAlert})
	assert.ErrorIs(t, err, entity.ErrInvalidDialog)
}

func TestDialogJournal_RecentListAndDelete(t *testing.T) {
	ctx, repo := openJournal(t)

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i, w := range []entity.WindowID{"w1", "w2", "w1"} {
		opened := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Append(ctx, &entity.DialogRecord{
			ID:         entity.DialogID(string(rune('a' + i))),
			WindowID:   w,
			Kind:       entity.DialogConfirm,
			Message:    "sure?",
			Accepted:   i%2 == 0,
			ResolvedBy: entity.ResolvedByController,
			OpenedAt:   opened,
			ClosedAt:   opened.Add(time.Second),
		}))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, entity.DialogID("c"), recent[0].ID)
	assert.Equal(t, entity.DialogID("b"), recent[1].ID)
	assert.False(t, recent[1].HasText)

	w1, err := repo.ListByWindow(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, w1, 2)
	assert.Equal(t, entity.DialogID("a"), w1[0].ID)

	n, err := repo.DeleteBefore(ctx, base.Add(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	recent, err = repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}
