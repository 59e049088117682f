package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFromID(t *testing.T) {
	assert.Equal(t, QueueRankedSolo, QueueFromID(420))
	assert.Equal(t, "Ranked Solo/Duo", QueueFromID(420).Name())
	assert.Equal(t, QueueUnknown, QueueFromID(9999))
	assert.Equal(t, QueueUnknown, QueueFromID(-1))
	assert.Equal(t, "Unknown", QueueUnknown.Name())
}

func TestQueueFromOptionalID(t *testing.T) {
	assert.Equal(t, QueueUnknown, QueueFromOptionalID(nil))
	id := 450
	assert.Equal(t, QueueARAM, QueueFromOptionalID(&id))
}

func TestQueue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(QueueRankedFlex)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":440,"name":"Ranked Flex"}`, string(data))
}

func TestMapFromID(t *testing.T) {
	assert.Equal(t, MapSummonersRift, MapFromID(11))
	assert.Equal(t, MapUnknown, MapFromID(77))
}

func TestParsePlatformRoute(t *testing.T) {
	p, ok := ParsePlatformRoute("euw1")
	require.True(t, ok)
	assert.Equal(t, PlatformEUW1, p)
	assert.Equal(t, RegionEurope, p.Regional())
	assert.Equal(t, "euw1", p.Host())

	p, ok = ParsePlatformRoute("NA")
	require.True(t, ok)
	assert.Equal(t, PlatformNA1, p)

	_, ok = ParsePlatformRoute("MOON1")
	assert.False(t, ok)
}

func TestLiveGame_WithEncountersLeavesSharedSnapshot(t *testing.T) {
	shared := &LiveGame{
		GameID: NewMatchID("1_NA1"),
		Participants: []Participant{
			{SummonerID: 1},
			{SummonerID: 2},
		},
	}

	a := shared.WithEncounters(map[int64]int{1: 3})
	b := shared.WithEncounters(map[int64]int{2: 7})

	assert.Equal(t, 3, a.Participants[0].EncounterCount)
	assert.Equal(t, 0, a.Participants[1].EncounterCount)
	assert.Equal(t, 7, b.Participants[1].EncounterCount)
	assert.Equal(t, 0, shared.Participants[0].EncounterCount)
	assert.Equal(t, 0, shared.Participants[1].EncounterCount)
	assert.Equal(t, []int64{1, 2}, shared.SummonerIDs())
}
