package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/testutil"
)

// createTestStore opens a fresh store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist")

	v, err := s.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.SaveCollection(ctx, testutil.Pharmacies()))
	require.NoError(t, s1.Close())

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "open iteration %d", i)
		require.NoError(t, s.Close())
	}

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n, "reopening must not drop data")
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/test.db")
	assert.Error(t, err)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	assert.NoError(t, s.Close())
}

func TestPing(t *testing.T) {
	s := createTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestLoadCollection_EmptyIsNotNil(t *testing.T) {
	s := createTestStore(t)

	records, err := s.LoadCollection(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveCollection_RoundTripPreservesOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Reverse order so seq, not id, decides the read order.
	in := testutil.Pharmacies()
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}

	require.NoError(t, s.SaveCollection(ctx, in))

	out, err := s.LoadCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveCollection_ReplacesWholeSnapshot(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCollection(ctx, testutil.Pharmacies()))
	require.NoError(t, s.SaveCollection(ctx, testutil.Numbered(3)))

	out, err := s.LoadCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ID{1, 2, 3}, model.IDs(out))

	rev, err := s.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)
}

func TestSaveCollection_RejectsDuplicatesWithoutWriting(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveCollection(ctx, testutil.Pharmacies()))

	err := s.SaveCollection(ctx, []model.Record{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}})
	require.Error(t, err)
	assert.True(t, model.IsInvalidInput(err))

	out, err := s.LoadCollection(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 10)

	rev, err := s.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)
}

func TestSaveCollection_Empty(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveCollection(ctx, testutil.Pharmacies()))
	require.NoError(t, s.SaveCollection(ctx, nil))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRevision_StartsAtZero(t *testing.T) {
	s := createTestStore(t)
	rev, err := s.Revision(context.Background())
	require.NoError(t, err)
	assert.Zero(t, rev)
}
