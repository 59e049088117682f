package model

import (
	"fmt"
	"unicode/utf8"
)

// Fixed capacities of the identity kinds, in bytes.
const (
	PuuidSize   = 78
	MatchIDSize = 17
	ProSlugSize = 20
)

// Puuid is a player identity stored in a fixed-size buffer so it can be used
// as a comparable map key. Unused trailing bytes are zero and never part of
// the value.
type Puuid [PuuidSize]byte

// MatchID is a match identity ("{gameId}_{platformId}") in a fixed-size buffer.
type MatchID [MatchIDSize]byte

// ProSlug identifies a notable (professional) player.
type ProSlug [ProSlugSize]byte

// NewPuuid builds a Puuid from s. Input longer than PuuidSize is truncated
// at the last complete UTF-8 rune that fits.
func NewPuuid(s string) Puuid {
	var p Puuid
	fillFixed(p[:], s)
	return p
}

// NewMatchID builds a MatchID from s, truncating like NewPuuid.
func NewMatchID(s string) MatchID {
	var m MatchID
	fillFixed(m[:], s)
	return m
}

// FormatMatchID builds the match identity from the upstream game id and
// platform id, e.g. 123456 and "NA1" become "123456_NA1".
func FormatMatchID(gameID int64, platformID string) MatchID {
	return NewMatchID(fmt.Sprintf("%d_%s", gameID, platformID))
}

// NewProSlug builds a ProSlug from s, truncating like NewPuuid.
func NewProSlug(s string) ProSlug {
	var p ProSlug
	fillFixed(p[:], s)
	return p
}

func (p Puuid) String() string   { return trimPadding(p[:]) }
func (m MatchID) String() string { return trimPadding(m[:]) }
func (s ProSlug) String() string { return trimPadding(s[:]) }

// IsZero reports whether the key holds no value.
func (p Puuid) IsZero() bool   { return p == Puuid{} }
func (m MatchID) IsZero() bool { return m == MatchID{} }
func (s ProSlug) IsZero() bool { return s == ProSlug{} }

func (p Puuid) MarshalText() ([]byte, error)   { return []byte(p.String()), nil }
func (m MatchID) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (s ProSlug) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (p *Puuid) UnmarshalText(b []byte) error {
	*p = NewPuuid(string(b))
	return nil
}

func (m *MatchID) UnmarshalText(b []byte) error {
	*m = NewMatchID(string(b))
	return nil
}

func (s *ProSlug) UnmarshalText(b []byte) error {
	*s = NewProSlug(string(b))
	return nil
}

func fillFixed(dst []byte, s string) {
	n := len(s)
	if n > len(dst) {
		n = len(dst)
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
	}
	copy(dst, s[:n])
}

func trimPadding(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}
