package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/fastbreak-sim/fastbreak-sim/league"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saves.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s, path
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	ls := league.NewLeague(42, 2025, league.DefaultSettings(), "")
	require.NoError(t, s.Save(ctx, "slot1", ls))

	loaded, err := s.Load(ctx, "slot1")
	require.NoError(t, err)

	want, err := json.Marshal(ls)
	require.NoError(t, err)
	got, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))

	// Indexes are rebuilt: lookups work immediately after load.
	for _, team := range loaded.Teams {
		require.NotNil(t, loaded.Team(team.ID))
		for _, id := range team.Roster {
			require.NotNil(t, loaded.Player(id), "player %s not indexed", id)
		}
	}
}

func TestSave_Overwrite_ReplacesSlot(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	first := league.NewLeague(1, 2025, league.DefaultSettings(), "")
	require.NoError(t, s.Save(ctx, "slot1", first))

	second := league.NewLeague(2, 2025, league.DefaultSettings(), "")
	require.NoError(t, s.Save(ctx, "slot1", second))

	loaded, err := s.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Seed)

	infos, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestLoad_MissingSlot_Fails(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Load(context.Background(), "nope")
	var notFound *SlotNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Slot)
}

func TestLoad_WrongSchemaVersion_Fails(t *testing.T) {
	s, path := openTestStore(t)
	ctx := context.Background()

	ls := league.NewLeague(42, 2025, league.DefaultSettings(), "")
	require.NoError(t, s.Save(ctx, "slot1", ls))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`UPDATE save_slots SET schema_version = ? WHERE slot = ?`, SchemaVersion+1, "slot1")
	require.NoError(t, err)

	_, err = s.Load(ctx, "slot1")
	var incompatible *IncompatibleVersionError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, SchemaVersion+1, incompatible.Got)
	assert.Equal(t, SchemaVersion, incompatible.Want)
}

func TestList_ReportsMetadata(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	ls := league.NewLeague(42, 2025, league.DefaultSettings(), "")
	require.NoError(t, s.Save(ctx, "a", ls))
	require.NoError(t, s.Save(ctx, "b", ls))

	infos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.Equal(t, 2025, info.Year)
		assert.Equal(t, league.PhaseRegular, info.Phase)
		assert.Greater(t, info.SizeBytes, 0)
		assert.False(t, info.SavedAt.IsZero())
	}
}

func TestDelete_RemovesSlot(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	ls := league.NewLeague(42, 2025, league.DefaultSettings(), "")
	require.NoError(t, s.Save(ctx, "slot1", ls))
	require.NoError(t, s.Delete(ctx, "slot1"))

	var notFound *SlotNotFoundError
	_, err := s.Load(ctx, "slot1")
	require.ErrorAs(t, err, &notFound)

	err = s.Delete(ctx, "slot1")
	require.ErrorAs(t, err, &notFound)
}

func TestOpen_EmptyPath_Fails(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
