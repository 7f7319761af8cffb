package service

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/oliverisaac/pinboard/db"
	"github.com/oliverisaac/pinboard/testutil"
	"github.com/oliverisaac/pinboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrBootstrapDefault_CreatesOnce(t *testing.T) {
	f := newFixture(t)

	board, created, err := f.svc.GetOrBootstrapDefault(f.ctx, f.alice.ID, nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, types.DefaultBoardName, board.Name)
	assert.Equal(t, f.alice.ID, board.UserID)

	again, created, err := f.svc.GetOrBootstrapDefault(f.ctx, f.alice.ID, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, board.ID, again.ID)

	boards, err := f.svc.ListBoards(f.ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestGetOrBootstrapDefault_PicksRequestedOrLatest(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "first")
	require.NoError(t, err)
	second, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "second")
	require.NoError(t, err)

	latest, created, err := f.svc.GetOrBootstrapDefault(f.ctx, f.alice.ID, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, second.ID, latest.ID)

	requested, _, err := f.svc.GetOrBootstrapDefault(f.ctx, f.alice.ID, &first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, requested.ID)

	bobBoard, err := f.svc.CreateBoard(f.ctx, f.bob.ID, "bob's")
	require.NoError(t, err)
	_, _, err = f.svc.GetOrBootstrapDefault(f.ctx, f.alice.ID, &bobBoard.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListBoards_NewestUpdatedFirst(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "a")
	require.NoError(t, err)
	b, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "b")
	require.NoError(t, err)
	_, err = f.svc.CreateBoard(f.ctx, f.bob.ID, "not alice's")
	require.NoError(t, err)

	boards, err := f.svc.ListBoards(f.ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, []uint{b.ID, a.ID}, []uint{boards[0].ID, boards[1].ID})

	_, err = f.svc.RenameBoard(f.ctx, f.alice.ID, a.ID, "a again")
	require.NoError(t, err)

	boards, err = f.svc.ListBoards(f.ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, []uint{boards[0].ID, boards[1].ID})
}

func TestCreateBoard_BlankNameDefaults(t *testing.T) {
	f := newFixture(t)

	board, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "   ")
	require.NoError(t, err)
	assert.Equal(t, types.NewBoardName, board.Name)

	board, err = f.svc.CreateBoard(f.ctx, f.alice.ID, "  Ideas  ")
	require.NoError(t, err)
	assert.Equal(t, "Ideas", board.Name)
}

func TestRenameBoard(t *testing.T) {
	f := newFixture(t)

	board, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "Old")
	require.NoError(t, err)

	renamed, err := f.svc.RenameBoard(f.ctx, f.alice.ID, board.ID, "  New  ")
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)
	assert.True(t, renamed.UpdatedAt.After(board.UpdatedAt))

	kept, err := f.svc.RenameBoard(f.ctx, f.alice.ID, board.ID, "   ")
	require.NoError(t, err)
	assert.Equal(t, "New", kept.Name)

	stored, err := f.svc.GetBoard(f.ctx, f.alice.ID, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.Name)

	_, err = f.svc.RenameBoard(f.ctx, f.bob.ID, board.ID, "stolen")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteBoard_CascadesToNotes(t *testing.T) {
	f := newFixture(t)

	doomed, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "doomed")
	require.NoError(t, err)
	kept, err := f.svc.CreateBoard(f.ctx, f.alice.ID, "kept")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := f.svc.CreateNote(f.ctx, f.alice.ID, NoteInput{BoardID: doomed.ID, Title: "x"})
		require.NoError(t, err)
	}
	survivor, err := f.svc.CreateNote(f.ctx, f.alice.ID, NoteInput{BoardID: kept.ID, Title: "y"})
	require.NoError(t, err)

	_, err = f.svc.DeleteBoard(f.ctx, f.bob.ID, doomed.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	deleted, err := f.svc.DeleteBoard(f.ctx, f.alice.ID, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, "doomed", deleted.Name)

	var orphans int64
	require.NoError(t, f.db.Model(&types.Note{}).Where("board_id = ?", doomed.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	_, err = f.svc.GetBoard(f.ctx, f.alice.ID, doomed.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = f.svc.GetNote(f.ctx, f.alice.ID, survivor.ID)
	assert.NoError(t, err)
}

func TestGetOrBootstrapDefault_ConcurrentFirstVisits(t *testing.T) {
	d, err := db.OpenSQLite(filepath.Join(t.TempDir(), "pinboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	svc := New(d)
	owner := testutil.SeedUser(t, d, "alice", "password-alice")

	const visits = 8
	var wg sync.WaitGroup
	var creations atomic.Int32
	results := make(chan error, visits)
	for i := 0; i < visits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := svc.GetOrBootstrapDefault(context.Background(), owner.ID, nil)
			if created {
				creations.Add(1)
			}
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), creations.Load())
	boards, err := svc.ListBoards(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}
