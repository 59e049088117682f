package model

import "strings"

// PlatformRoute is a game server platform such as NA1 or EUW1.
type PlatformRoute string

// Supported platforms.
const (
	PlatformBR1  PlatformRoute = "BR1"
	PlatformEUN1 PlatformRoute = "EUN1"
	PlatformEUW1 PlatformRoute = "EUW1"
	PlatformJP1  PlatformRoute = "JP1"
	PlatformKR   PlatformRoute = "KR"
	PlatformLA1  PlatformRoute = "LA1"
	PlatformLA2  PlatformRoute = "LA2"
	PlatformME1  PlatformRoute = "ME1"
	PlatformNA1  PlatformRoute = "NA1"
	PlatformOC1  PlatformRoute = "OC1"
	PlatformPH2  PlatformRoute = "PH2"
	PlatformRU   PlatformRoute = "RU"
	PlatformSG2  PlatformRoute = "SG2"
	PlatformTH2  PlatformRoute = "TH2"
	PlatformTR1  PlatformRoute = "TR1"
	PlatformTW2  PlatformRoute = "TW2"
	PlatformVN2  PlatformRoute = "VN2"
)

// RegionalRoute is the routing value used by region-wide APIs (accounts).
type RegionalRoute string

// Regional routes.
const (
	RegionAmericas RegionalRoute = "americas"
	RegionAsia     RegionalRoute = "asia"
	RegionEurope   RegionalRoute = "europe"
	RegionSEA      RegionalRoute = "sea"
)

var platformRegions = map[PlatformRoute]RegionalRoute{
	PlatformBR1:  RegionAmericas,
	PlatformLA1:  RegionAmericas,
	PlatformLA2:  RegionAmericas,
	PlatformNA1:  RegionAmericas,
	PlatformEUN1: RegionEurope,
	PlatformEUW1: RegionEurope,
	PlatformME1:  RegionEurope,
	PlatformRU:   RegionEurope,
	PlatformTR1:  RegionEurope,
	PlatformJP1:  RegionAsia,
	PlatformKR:   RegionAsia,
	PlatformOC1:  RegionSEA,
	PlatformPH2:  RegionSEA,
	PlatformSG2:  RegionSEA,
	PlatformTH2:  RegionSEA,
	PlatformTW2:  RegionSEA,
	PlatformVN2:  RegionSEA,
}

// ParsePlatformRoute parses a platform code case-insensitively.
// The display aliases used in site URLs ("NA", "EUW", "EUNE", ...) are accepted too.
func ParsePlatformRoute(s string) (PlatformRoute, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if alias, ok := platformAliases[code]; ok {
		code = alias
	}
	p := PlatformRoute(code)
	if _, ok := platformRegions[p]; !ok {
		return "", false
	}
	return p, true
}

var platformAliases = map[string]string{
	"BR":   "BR1",
	"EUNE": "EUN1",
	"EUW":  "EUW1",
	"JP":   "JP1",
	"LAN":  "LA1",
	"LAS":  "LA2",
	"ME":   "ME1",
	"NA":   "NA1",
	"OCE":  "OC1",
	"PH":   "PH2",
	"SG":   "SG2",
	"TH":   "TH2",
	"TR":   "TR1",
	"TW":   "TW2",
	"VN":   "VN2",
}

// Regional returns the regional route serving this platform.
func (p PlatformRoute) Regional() RegionalRoute {
	return platformRegions[p]
}

// Host returns the lowercase platform host prefix, e.g. "na1".
func (p PlatformRoute) Host() string {
	return strings.ToLower(string(p))
}

func (p PlatformRoute) String() string { return string(p) }
