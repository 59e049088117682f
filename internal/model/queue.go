package model

import "encoding/json"

// Queue is a matchmaking queue, identified by the upstream queue config id.
type Queue uint16

// Known queues. QueueUnknown is used for ids missing from the table.
const (
	QueueUnknown       Queue = 0
	QueueNormalDraft   Queue = 400
	QueueRankedSolo    Queue = 420
	QueueNormalBlind   Queue = 430
	QueueRankedFlex    Queue = 440
	QueueARAM          Queue = 450
	QueueQuickplay     Queue = 490
	QueueClash         Queue = 700
	QueueARAMClash     Queue = 720
	QueueCoopIntro     Queue = 870
	QueueCoopBeginner  Queue = 880
	QueueCoopInter     Queue = 890
	QueueARURF         Queue = 900
	QueueOneForAll     Queue = 1020
	QueueArena         Queue = 1700
	QueueURF           Queue = 1900
	QueueSwiftplay     Queue = 480
	QueueNexusBlitz    Queue = 1300
	QueueUltimateSpell Queue = 1400
)

var queueNames = map[Queue]string{
	QueueNormalDraft:   "Normal Draft",
	QueueRankedSolo:    "Ranked Solo/Duo",
	QueueNormalBlind:   "Normal Blind",
	QueueRankedFlex:    "Ranked Flex",
	QueueARAM:          "ARAM",
	QueueSwiftplay:     "Swiftplay",
	QueueQuickplay:     "Quickplay",
	QueueClash:         "Clash",
	QueueARAMClash:     "ARAM Clash",
	QueueCoopIntro:     "Co-op vs AI Intro",
	QueueCoopBeginner:  "Co-op vs AI Beginner",
	QueueCoopInter:     "Co-op vs AI Intermediate",
	QueueARURF:         "ARURF",
	QueueOneForAll:     "One for All",
	QueueNexusBlitz:    "Nexus Blitz",
	QueueUltimateSpell: "Ultimate Spellbook",
	QueueArena:         "Arena",
	QueueURF:           "URF",
}

// QueueFromID maps an upstream queue config id to a Queue. Ids that are not
// in the table map to QueueUnknown.
func QueueFromID(id int) Queue {
	if id < 0 || id > 0xFFFF {
		return QueueUnknown
	}
	q := Queue(id)
	if _, ok := queueNames[q]; !ok {
		return QueueUnknown
	}
	return q
}

// QueueFromOptionalID is QueueFromID for a possibly missing id.
func QueueFromOptionalID(id *int) Queue {
	if id == nil {
		return QueueUnknown
	}
	return QueueFromID(*id)
}

// Name returns the display name of the queue.
func (q Queue) Name() string {
	if name, ok := queueNames[q]; ok {
		return name
	}
	return "Unknown"
}

func (q Queue) String() string { return q.Name() }

// MarshalJSON encodes the queue as {"id": ..., "name": ...}.
func (q Queue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   uint16 `json:"id"`
		Name string `json:"name"`
	}{uint16(q), q.Name()})
}

// Map is a game map, identified by the upstream map id.
type Map uint16

// Known maps.
const (
	MapUnknown          Map = 0
	MapSummonersRift    Map = 11
	MapHowlingAbyss     Map = 12
	MapButchersBridge   Map = 14
	MapNexusBlitz       Map = 21
	MapConvergence      Map = 22
	MapRingsOfWrath     Map = 30
	MapSummonersRiftURF Map = 35
)

var mapNames = map[Map]string{
	MapSummonersRift:    "Summoner's Rift",
	MapHowlingAbyss:     "Howling Abyss",
	MapButchersBridge:   "Butcher's Bridge",
	MapNexusBlitz:       "Nexus Blitz",
	MapConvergence:      "Convergence",
	MapRingsOfWrath:     "Rings of Wrath",
	MapSummonersRiftURF: "Summoner's Rift",
}

// MapFromID maps an upstream map id to a Map, MapUnknown if not in the table.
func MapFromID(id int) Map {
	if id < 0 || id > 0xFFFF {
		return MapUnknown
	}
	m := Map(id)
	if _, ok := mapNames[m]; !ok {
		return MapUnknown
	}
	return m
}

// Name returns the display name of the map.
func (m Map) Name() string {
	if name, ok := mapNames[m]; ok {
		return name
	}
	return "Unknown"
}

func (m Map) String() string { return m.Name() }

// MarshalJSON encodes the map as {"id": ..., "name": ...}.
func (m Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   uint16 `json:"id"`
		Name string `json:"name"`
	}{uint16(m), m.Name()})
}
