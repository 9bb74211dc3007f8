// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"github.com/prec-solucoes/dashmetas/campaign"
	"github.com/prec-solucoes/dashmetas/models"
)

// Dedupe reduces raw deal-stage rows to one row per deal_id, keeping the
// record with the earliest occurred_at. Ties keep the first record seen in
// input order; callers must not depend on tie outcome.
//
// Rows whose owner is not on the roster are dropped before grouping, so an
// off-roster first touch never shadows a roster member's record. Attribution
// is first-touch: the surviving record's owner gets the deal even if later
// rows name a different owner. That can lose credit for reassigned deals, but
// it is how the board has always counted and changing it would move scores.
func Dedupe(cfg campaign.Config, records []models.DealRecord) []models.DealRecord {
	best := make(map[int64]models.DealRecord)
	order := make([]int64, 0, len(records))

	for _, r := range records {
		if _, ok := cfg.TeamOf(r.Owner); !ok {
			continue
		}
		cur, seen := best[r.DealID]
		if !seen {
			best[r.DealID] = r
			order = append(order, r.DealID)
			continue
		}
		// Strictly earlier only, so equal dates keep the first row seen.
		if r.OccurredAt.Before(cur.OccurredAt) {
			best[r.DealID] = r
		}
	}

	out := make([]models.DealRecord, 0, len(order))
	for _, id := range order {
		out = append(out, best[id])
	}
	return out
}
