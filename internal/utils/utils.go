// Package utils provides small helpers shared across packages: number
// rounding and slug normalization.
package utils

import (
	"math"
	"regexp"
	"strings"
)

var slugifyNonAlnum = regexp.MustCompile(`[^a-z0-9-]+`)

var slugifyMultiHyphen = regexp.MustCompile(`-{2,}`)

// Slugify converts a display name to a URL-friendly slug.
// For example: "Lee Sang-hyeok" -> "lee-sang-hyeok".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "") // right single quotation mark
	s = strings.ReplaceAll(s, "‘", "") // left single quotation mark
	s = slugifyNonAlnum.ReplaceAllString(s, "-")
	s = slugifyMultiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// FloatRound rounds a float to the specified number of decimal places.
func FloatRound(number float64, ndigits int) float64 {
	pow := math.Pow(10, float64(ndigits))
	return math.Round(number*pow) / pow
}
