package livegame

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guliveer/livegame-go/internal/config"
	"github.com/Guliveer/livegame-go/internal/logger"
	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/riot"
	"github.com/Guliveer/livegame-go/internal/store"
)

type harness struct {
	svc        *Service
	cache      *Cache
	source     *fakeSource
	dir        *fakeDirectory
	stats      *fakeStats
	encounters *fakeEncounters
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		cache:      newTestCache(time.Minute, nil),
		source:     newFakeSource(),
		dir:        newFakeDirectory(),
		stats:      &fakeStats{},
		encounters: &fakeEncounters{counts: map[int64]map[int64]int{}},
	}
	h.svc = NewService(Deps{
		Cache:      h.cache,
		Source:     h.source,
		Players:    h.dir,
		Stats:      h.stats,
		Encounters: h.encounters,
	}, config.StatsConfig{RankedQueueID: 420, Cutoff: time.Date(2024, 9, 25, 12, 0, 0, 0, time.UTC)}, logger.Discard())
	return h
}

// tenPlayerGame registers p0..p9 as match participants; the first known
// players are stored in the directory, the rest are left for discovery.
func (h *harness) tenPlayerGame(known int) *riot.CurrentGameInfo {
	info := &riot.CurrentGameInfo{
		GameID:            123456,
		PlatformID:        "EUW1",
		MapID:             11,
		GameLength:        300,
		GameQueueConfigID: ptr(420),
	}
	for i := 0; i < 10; i++ {
		puuid := fmt.Sprintf("p%d", i)
		team := 100
		if i >= 5 {
			team = 200
		}
		info.Participants = append(info.Participants, participant(puuid, 100+i, team))
		if i < known {
			h.dir.add(puuid, "known-"+puuid)
		} else {
			h.source.accounts[puuid] = &model.Account{Puuid: puuid, GameName: "new-" + puuid, TagLine: "NEW"}
		}
	}
	for i := 0; i < 10; i++ {
		h.source.games[fmt.Sprintf("p%d", i)] = info
	}
	return info
}

func TestLiveGameDiscoversUnknownParticipants(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(8)
	h.source.accountErrs["p9"] = errors.New("account lookup failed")

	game, err := h.svc.LiveGame(context.Background(), h.dir.idOf("p0"), model.PlatformEUW1)
	require.NoError(t, err)
	require.NotNil(t, game)

	assert.Equal(t, "123456_EUW1", game.GameID.String())
	assert.Equal(t, model.QueueRankedSolo, game.Queue)
	assert.Equal(t, model.MapSummonersRift, game.Map)
	assert.Len(t, game.Participants, 9)

	assert.Equal(t, 1, h.source.accountCalls["p8"])
	assert.Equal(t, 1, h.source.accountCalls["p9"])
	for i := 0; i < 8; i++ {
		assert.Zero(t, h.source.accountCalls[fmt.Sprintf("p%d", i)])
	}

	require.Len(t, h.dir.inserted, 1)
	require.Len(t, h.dir.inserted[0], 1)
	inserted := h.dir.inserted[0][0]
	assert.Equal(t, "p8", inserted.Puuid.String())
	assert.Equal(t, "new-p8", inserted.GameName)
	assert.Equal(t, "NEW", inserted.TagLine)
	assert.Equal(t, 29, inserted.ProfileIconID)
	assert.Zero(t, inserted.SummonerLevel)
	assert.Equal(t, model.PlatformEUW1, inserted.Platform)

	cached, ok := h.cache.Get(model.NewPuuid("p0"))
	require.True(t, ok)
	for i := 1; i < 9; i++ {
		got, ok := h.cache.Get(model.NewPuuid(fmt.Sprintf("p%d", i)))
		require.True(t, ok, "p%d", i)
		assert.Same(t, cached, got)
	}
	_, ok = h.cache.Get(model.NewPuuid("p9"))
	assert.False(t, ok)
}

func TestLiveGameAllDiscoveriesSucceed(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(8)

	game, err := h.svc.LiveGame(context.Background(), h.dir.idOf("p0"), model.PlatformEUW1)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Len(t, game.Participants, 10)
	require.Len(t, h.dir.inserted, 1)
	assert.Len(t, h.dir.inserted[0], 2)
}

func TestLiveGameKnownPlayersAreNeverReinserted(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(10)

	game, err := h.svc.LiveGame(context.Background(), h.dir.idOf("p3"), model.PlatformEUW1)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Len(t, game.Participants, 10)
	assert.Empty(t, h.dir.inserted)
	assert.Empty(t, h.source.accountCalls)
}

func TestLiveGameSkipsParticipantsWithoutIdentity(t *testing.T) {
	h := newHarness(t)
	info := h.tenPlayerGame(10)
	info.Participants[4].Puuid = nil
	info.Participants[7].Puuid = ptr("")

	game, err := h.svc.LiveGame(context.Background(), h.dir.idOf("p0"), model.PlatformEUW1)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Len(t, game.Participants, 8)
	for _, p := range game.Participants {
		assert.NotEqual(t, "p4", p.Puuid.String())
		assert.NotEqual(t, "p7", p.Puuid.String())
	}
}

func TestLiveGameCacheHitSkipsUpstreamAndAnnotatesPerViewer(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(10)
	ctx := context.Background()
	viewerA, viewerB := h.dir.idOf("p0"), h.dir.idOf("p5")
	target := h.dir.idOf("p3")
	h.encounters.counts[viewerA] = map[int64]int{target: 4}
	h.encounters.counts[viewerB] = map[int64]int{target: 1}

	gameA, err := h.svc.LiveGame(ctx, viewerA, model.PlatformEUW1)
	require.NoError(t, err)
	gameB, err := h.svc.LiveGame(ctx, viewerB, model.PlatformEUW1)
	require.NoError(t, err)

	assert.Equal(t, 1, h.source.calls())
	assert.Equal(t, 2, h.encounters.calls)
	assert.Equal(t, 4, encountersOf(gameA, target))
	assert.Equal(t, 1, encountersOf(gameB, target))

	cached, ok := h.cache.Get(model.NewPuuid("p0"))
	require.True(t, ok)
	assert.Zero(t, encountersOf(cached, target))
}

func encountersOf(game *model.LiveGame, summonerID int64) int {
	for _, p := range game.Participants {
		if p.SummonerID == summonerID {
			return p.EncounterCount
		}
	}
	return -1
}

func TestLiveGameAttachesStats(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(10)
	p1 := h.dir.idOf("p1")
	h.stats.rows = []store.ChampionStatsRow{
		{SummonerID: p1, ChampionID: 101, TotalMatch: 10, TotalWin: 6, AvgKills: 5.5, AvgDeaths: 3, AvgAssists: 7.25},
		{SummonerID: p1, ChampionID: 55, TotalMatch: 4, TotalWin: 1, AvgKills: 2, AvgDeaths: 4, AvgAssists: 1},
	}

	game, err := h.svc.LiveGame(context.Background(), h.dir.idOf("p0"), model.PlatformEUW1)
	require.NoError(t, err)
	require.NotNil(t, game)

	require.Len(t, h.stats.calls, 1)
	assert.Len(t, h.stats.calls[0], 10)

	for _, p := range game.Participants {
		switch p.Puuid.String() {
		case "p1":
			require.NotNil(t, p.ChampionStats)
			assert.Equal(t, 10, p.ChampionStats.TotalPlayed)
			assert.Equal(t, 6, p.ChampionStats.TotalWins)
			require.NotNil(t, p.RankedStats)
			assert.Equal(t, model.RankedSummary{TotalRanked: 14, TotalRankedWins: 7}, *p.RankedStats)
		default:
			assert.Nil(t, p.ChampionStats)
			assert.Nil(t, p.RankedStats)
		}
	}
}

func TestLiveGameNotInGame(t *testing.T) {
	h := newHarness(t)
	id := h.dir.add("idle", "idle")

	game, err := h.svc.LiveGame(context.Background(), id, model.PlatformNA1)
	assert.NoError(t, err)
	assert.Nil(t, game)
	assert.Zero(t, h.encounters.calls)
}

func TestLiveGameUpstreamFailureIsAbsence(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(10)
	h.source.gameErr = errors.New("503 from upstream")

	game, err := h.svc.LiveGame(context.Background(), h.dir.idOf("p0"), model.PlatformEUW1)
	assert.NoError(t, err)
	assert.Nil(t, game)
	assert.Zero(t, h.cache.Len())
}

func TestLiveGameUnknownViewer(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.LiveGame(context.Background(), 404, model.PlatformEUW1)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Zero(t, h.source.calls())
}

func TestLiveGameStoreFailuresPropagate(t *testing.T) {
	storeErr := errors.New("database is locked")

	cases := map[string]func(h *harness){
		"resolve":  func(h *harness) { h.dir.findErr = storeErr },
		"insert":   func(h *harness) { h.dir.insertErr = storeErr },
		"stats":    func(h *harness) { h.stats.err = storeErr },
		"annotate": func(h *harness) { h.encounters.err = storeErr },
	}
	for name, breakIt := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			h.tenPlayerGame(8)
			viewer := h.dir.idOf("p0")
			breakIt(h)

			game, err := h.svc.LiveGame(context.Background(), viewer, model.PlatformEUW1)
			assert.ErrorIs(t, err, storeErr)
			assert.Nil(t, game)
		})
	}
}

func TestLiveGameConcurrentMissesShareOneFetch(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(10)
	h.source.gate = make(chan struct{})
	viewer := h.dir.idOf("p0")

	var wg sync.WaitGroup
	results := make([]*model.LiveGame, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			game, err := h.svc.LiveGame(context.Background(), viewer, model.PlatformEUW1)
			assert.NoError(t, err)
			results[i] = game
		}(i)
	}

	require.Eventually(t, func() bool { return h.source.calls() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(h.source.gate)
	wg.Wait()

	assert.Equal(t, 1, h.source.calls())
	for _, g := range results {
		require.NotNil(t, g)
		assert.Len(t, g.Participants, 10)
	}
}

func TestLiveGameCancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	h := newHarness(t)
	h.tenPlayerGame(10)
	h.source.gate = make(chan struct{})
	viewer := h.dir.idOf("p0")

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := h.svc.LiveGame(leaderCtx, viewer, model.PlatformEUW1)
		leaderErr <- err
	}()
	require.Eventually(t, func() bool { return h.source.calls() == 1 }, time.Second, time.Millisecond)

	type result struct {
		game *model.LiveGame
		err  error
	}
	waiter := make(chan result, 1)
	go func() {
		game, err := h.svc.LiveGame(context.Background(), viewer, model.PlatformEUW1)
		waiter <- result{game, err}
	}()
	time.Sleep(10 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(h.source.gate)
	res := <-waiter
	require.NoError(t, res.err)
	require.NotNil(t, res.game)
	assert.Len(t, res.game.Participants, 10)
	assert.Equal(t, 1, h.source.calls())

	_, ok := h.cache.Get(model.NewPuuid("p0"))
	assert.True(t, ok)
}
