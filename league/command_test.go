package league

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps save slots in a map, standing in for the SQLite store.
type memStore struct {
	slots map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{slots: make(map[string][]byte)}
}

func (m *memStore) Save(_ context.Context, slot string, ls *LeagueState) error {
	blob, err := json.Marshal(ls)
	if err != nil {
		return err
	}
	m.slots[slot] = blob
	return nil
}

func (m *memStore) Load(_ context.Context, slot string) (*LeagueState, error) {
	blob, ok := m.slots[slot]
	if !ok {
		return nil, &ValidationError{Op: "load", Detail: "missing slot " + slot}
	}
	var ls LeagueState
	if err := json.Unmarshal(blob, &ls); err != nil {
		return nil, err
	}
	ls.Reindex()
	return &ls, nil
}

func TestApply_NewGame_BuildsLeague(t *testing.T) {
	res, err := Apply(context.Background(), nil, nil, NewGameCommand{Seed: 42, Year: 2025})
	require.NoError(t, err)
	require.NotNil(t, res.State)
	assert.Len(t, res.State.Teams, DefaultSettings().TeamsPerLeague)
	assert.Equal(t, 2025, res.State.Year)
}

func TestApply_SelectTeam(t *testing.T) {
	ls := NewLeague(42, 2025, DefaultSettings(), "")
	target := ls.Teams[5].ID

	res, err := Apply(context.Background(), ls, nil, SelectTeamCommand{TeamID: target})
	require.NoError(t, err)
	assert.Equal(t, target, res.State.UserTeamID)

	_, err = Apply(context.Background(), ls, nil, SelectTeamCommand{TeamID: "nope"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestApply_AdvanceTime_ToNextEvent(t *testing.T) {
	ls := NewLeague(42, 2025, DefaultSettings(), "")

	res, err := Apply(context.Background(), ls, nil, AdvanceTimeCommand{ToNextEvent: true})
	require.NoError(t, err)
	require.NotNil(t, res.Report)
	assert.True(t, len(res.Report.Games) > 0 || res.Report.Transitioned)
}

func TestApply_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	ls := NewLeague(42, 2025, DefaultSettings(), "")
	_, err := Apply(ctx, ls, st, AdvanceTimeCommand{Days: 5})
	require.NoError(t, err)

	_, err = Apply(ctx, ls, st, SaveCommand{Slot: "s1"})
	require.NoError(t, err)

	res, err := Apply(ctx, ls, st, LoadCommand{Slot: "s1"})
	require.NoError(t, err)
	loaded := res.State
	require.NotSame(t, ls, loaded)

	aj, err := json.Marshal(ls)
	require.NoError(t, err)
	bj, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(aj), string(bj))

	// The loaded copy keeps simulating identically to the original.
	r1, err := ls.AdvanceToNextEvent()
	require.NoError(t, err)
	r2, err := loaded.AdvanceToNextEvent()
	require.NoError(t, err)
	require.Equal(t, len(r1.Games), len(r2.Games))
	for i := range r1.Games {
		assert.Equal(t, r1.Games[i].Result.HomeScore, r2.Games[i].Result.HomeScore)
		assert.Equal(t, r1.Games[i].Result.AwayScore, r2.Games[i].Result.AwayScore)
	}
}

func TestApply_SaveWithoutStore_Fails(t *testing.T) {
	ls := NewLeague(42, 2025, DefaultSettings(), "")
	_, err := Apply(context.Background(), ls, nil, SaveCommand{Slot: "s1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestApply_TradeCommand_DryRunDoesNotMutate(t *testing.T) {
	ls := tradeLeague()

	res, err := Apply(context.Background(), ls, nil, ProposeTradeCommand{Proposal: *evenSwap(), DryRun: true})
	require.NoError(t, err)
	require.NotNil(t, res.Verdict)
	assert.True(t, res.Verdict.Accepted)
	assert.True(t, ls.Team("AAA").HasPlayer("AAA-0"), "dry run moved a player")

	res, err = Apply(context.Background(), ls, nil, ProposeTradeCommand{Proposal: *evenSwap()})
	require.NoError(t, err)
	assert.True(t, res.Verdict.Accepted)
	assert.True(t, ls.Team("BBB").HasPlayer("AAA-0"))
}
