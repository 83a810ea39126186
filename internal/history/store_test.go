// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "history.db")
	store, err := Open(types.HistoryConfig{Enabled: true, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestRecordAndList(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, types.ConversionRecord{
		Source:      "a.txt",
		Destination: "a.xlsx",
		Status:      types.ConversionDone,
		Stats:       types.Stats{Sections: 2, SubSections: 1, Blocks: 2},
		CreatedAt:   base,
	}))
	require.NoError(t, store.Record(ctx, types.ConversionRecord{
		Source:    "-",
		Status:    types.ConversionFailed,
		Error:     "no text provided",
		CreatedAt: base.Add(time.Minute),
	}))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	newest := records[0]
	assert.Equal(t, "-", newest.Source)
	assert.Equal(t, types.ConversionFailed, newest.Status)
	assert.Equal(t, "no text provided", newest.Error)
	assert.NotEmpty(t, newest.ID)

	oldest := records[1]
	assert.Equal(t, "a.xlsx", oldest.Destination)
	assert.Equal(t, 5, oldest.Stats.Rows())
	assert.True(t, oldest.CreatedAt.Equal(base))
	assert.Empty(t, oldest.Error)
}

func TestList_Limit(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, types.ConversionRecord{
			Source: "in.txt", Destination: "out.xlsx", Status: types.ConversionDone,
		}))
	}

	records, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Record(context.Background(), types.ConversionRecord{
		Source: "x", Destination: "y", Status: types.ConversionDone,
	}))
	require.NoError(t, store.Close())

	reopened, err := Open(types.HistoryConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestList_Empty(t *testing.T) {
	store, _ := testStore(t)
	records, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
