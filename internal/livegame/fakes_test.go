package livegame

import (
	"context"
	"sync"
	"time"

	"github.com/Guliveer/livegame-go/internal/model"
	"github.com/Guliveer/livegame-go/internal/riot"
	"github.com/Guliveer/livegame-go/internal/store"
)

type fakeSource struct {
	mu           sync.Mutex
	games        map[string]*riot.CurrentGameInfo
	gameErr      error
	accounts     map[string]*model.Account
	accountErrs  map[string]error
	gameCalls    int
	accountCalls map[string]int
	gate         chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		games:        map[string]*riot.CurrentGameInfo{},
		accounts:     map[string]*model.Account{},
		accountErrs:  map[string]error{},
		accountCalls: map[string]int{},
	}
}

func (f *fakeSource) CurrentGame(ctx context.Context, puuid string, _ model.PlatformRoute) (*riot.CurrentGameInfo, error) {
	f.mu.Lock()
	f.gameCalls++
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gameErr != nil {
		return nil, f.gameErr
	}
	return f.games[puuid], nil
}

func (f *fakeSource) Account(_ context.Context, puuid string, _ model.RegionalRoute) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCalls[puuid]++
	if err := f.accountErrs[puuid]; err != nil {
		return nil, err
	}
	return f.accounts[puuid], nil
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gameCalls
}

type fakeDirectory struct {
	mu        sync.Mutex
	nextID    int64
	players   map[model.Puuid]model.PlayerRecord
	inserted  [][]model.NewPlayer
	insertErr error
	findErr   error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{nextID: 1, players: map[model.Puuid]model.PlayerRecord{}}
}

// add registers a known player and returns its id.
func (d *fakeDirectory) add(puuid, name string) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	k := model.NewPuuid(puuid)
	d.players[k] = model.PlayerRecord{
		ID: id, Puuid: k, GameName: name, TagLine: "TAG", Platform: model.PlatformEUW1, SummonerLevel: 30,
	}
	return id
}

func (d *fakeDirectory) idOf(puuid string) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.players[model.NewPuuid(puuid)].ID
}

func (d *fakeDirectory) FindPuuidByID(_ context.Context, id int64) (model.Puuid, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, rec := range d.players {
		if rec.ID == id {
			return k, nil
		}
	}
	return model.Puuid{}, store.ErrNotFound
}

func (d *fakeDirectory) FindByPuuids(_ context.Context, puuids []model.Puuid) (map[model.Puuid]model.PlayerRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.findErr != nil {
		return nil, d.findErr
	}
	out := map[model.Puuid]model.PlayerRecord{}
	for _, k := range puuids {
		if rec, ok := d.players[k]; ok {
			out[k] = rec
		}
	}
	return out, nil
}

func (d *fakeDirectory) BulkInsert(_ context.Context, players []model.NewPlayer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.insertErr != nil {
		return d.insertErr
	}
	d.inserted = append(d.inserted, players)
	for _, p := range players {
		if _, ok := d.players[p.Puuid]; ok {
			continue
		}
		d.players[p.Puuid] = model.PlayerRecord{
			ID: d.nextID, Puuid: p.Puuid, GameName: p.GameName, TagLine: p.TagLine,
			Platform: p.Platform, SummonerLevel: p.SummonerLevel,
		}
		d.nextID++
	}
	return nil
}

type fakeStats struct {
	mu    sync.Mutex
	rows  []store.ChampionStatsRow
	err   error
	calls [][]int64
}

func (s *fakeStats) ChampionStats(_ context.Context, ids []int64, _ int, _ time.Time) ([]store.ChampionStatsRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, ids)
	if s.err != nil {
		return nil, s.err
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []store.ChampionStatsRow
	for _, r := range s.rows {
		if want[r.SummonerID] {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEncounters struct {
	mu     sync.Mutex
	counts map[int64]map[int64]int
	err    error
	calls  int
}

func (e *fakeEncounters) EncounterCounts(_ context.Context, viewerID int64, candidates []int64) (map[int64]int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	out := map[int64]int{}
	for _, c := range candidates {
		if n, ok := e.counts[viewerID][c]; ok && c != viewerID {
			out[c] = n
		}
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func participant(puuid string, championID, teamID int) riot.CurrentGameParticipant {
	p := riot.CurrentGameParticipant{
		ChampionID:    championID,
		Spell1ID:      4,
		Spell2ID:      14,
		TeamID:        teamID,
		ProfileIconID: 29,
		Perks: &riot.Perks{
			PerkIDs:      []int{8112, 8139, 8138},
			PerkStyle:    8100,
			PerkSubStyle: 8300,
		},
	}
	if puuid != "" {
		p.Puuid = ptr(puuid)
	}
	return p
}
