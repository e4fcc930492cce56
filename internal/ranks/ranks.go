// Package ranks maps ranked tiers to their emblem assets in object storage.
package ranks

import "strings"

var imageByTier = map[string]string{
	"IRON":        "101000-IRON.png",
	"BRONZE":      "101000-BRONZE.png",
	"SILVER":      "101000-SILVER.png",
	"GOLD":        "101000-GOLD.png",
	"PLATINUM":    "101000-PLATINUM.png",
	"DIAMOND":     "101000-DIAMOND.png",
	"MASTER":      "101000-MASTER.png",
	"GRANDMASTER": "101000-GRANDMASTER.png",
	"CHALLENGER":  "101000-CHALLENGER.png",
	"UNRANKED":    "101000-UNRANKED.png",
}

// Image builds the emblem URL for a tier, falling back to the unranked
// emblem when the tier is unrecognized.
func Image(bucketURL, tier string) string {
	file, ok := imageByTier[strings.ToUpper(tier)]
	if !ok {
		file = imageByTier["UNRANKED"]
	}
	return bucketURL + "/" + file
}
