/* models.go
 * This file contains the formatting helpers used by api consumers when rendering report strings
 * Authors: Zachary Bower
 */

package api

import (
	"math"
	"strconv"

	"tourboard/api/parse"
	"tourboard/api/shared"
)

// fmtNumber renders a numeric value with at most two decimals, dropping
// trailing zeros the way the results page does
func fmtNumber(n float64) string {
	rounded := math.Round(n*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// fmtOptional renders a possibly absent value; a missing stat shows as a dash
func fmtOptional(n *float64) string {
	if n == nil {
		return "—"
	}
	return fmtNumber(*n)
}

// parseKillPoints normalizes the configured kill points, defaulting to 0
func parseKillPoints(cfg shared.TournamentConfig) float64 {
	n := parse.ToNumber(cfg.Scoring.KillPoints)
	if !parse.IsFinite(n) {
		return 0
	}
	return n
}
