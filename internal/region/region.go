// Package region validates platform region codes and maps them to the
// macro routing clusters used by the match-v5 API.
package region

import "strings"

// Routing is the macro cluster serving match-list and match-detail calls.
// Summoner and league lookups keep using the finer-grained platform code.
type Routing string

const (
	Americas Routing = "americas"
	Europe   Routing = "europe"
	Asia     Routing = "asia"
)

var routingByPlatform = map[string]Routing{
	"euw1": Europe,
	"eun1": Europe,
	"ru":   Europe,
	"oc1":  Europe,
	"tr1":  Europe,
	"na1":  Americas,
	"la1":  Americas,
	"la2":  Americas,
	"kr":   Asia,
	"br1":  Asia,
	"jp1":  Asia,
}

// IsValid reports whether code is one of the supported platform regions.
// Matching is case-insensitive.
func IsValid(code string) bool {
	_, ok := routingByPlatform[strings.ToLower(code)]
	return ok
}

// Route resolves the routing cluster for a platform region. The second
// return value is false for any code outside the supported set.
func Route(code string) (Routing, bool) {
	r, ok := routingByPlatform[strings.ToLower(code)]
	return r, ok
}
