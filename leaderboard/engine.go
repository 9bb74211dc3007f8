// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"math"
	"sort"
	"time"

	"github.com/prec-solucoes/dashmetas/campaign"
	"github.com/prec-solucoes/dashmetas/models"
)

// ownerTotals accumulates the per-owner counters before the team roll-up.
type ownerTotals struct {
	presented int
	won       int
	closings  int
	revenue   float64
}

// Compute turns a snapshot of the three input feeds into the ranked
// leaderboard. It holds no state and performs no I/O: callers fetch the rows,
// inject now, and get the same report for the same snapshot every time.
//
// deals are raw stage rows (Compute dedupes them); sales and closings are the
// manually maintained ledgers, already window-filtered by the store.
func Compute(cfg campaign.Config, now time.Time, deals []models.DealRecord, sales []models.ClosedSale, closings []models.ManualClosing) models.Report {
	deduped := Dedupe(cfg, deals)

	totals := make(map[string]*ownerTotals)
	get := func(owner string) *ownerTotals {
		t, ok := totals[owner]
		if !ok {
			t = &ownerTotals{}
			totals[owner] = t
		}
		return t
	}

	qualifying := 0
	for _, d := range deduped {
		qualifying++
		if d.Stage == cfg.PresentedStage {
			get(d.Owner).presented++
		}
	}
	for _, s := range sales {
		if _, ok := cfg.TeamOf(s.Owner); !ok {
			continue
		}
		qualifying++
		t := get(s.Owner)
		t.won++
		t.revenue += s.Value
	}
	for _, c := range closings {
		if _, ok := cfg.TeamOf(c.Owner); !ok {
			continue
		}
		qualifying++
		get(c.Owner).closings++
	}

	totalWeeks, elapsedWeeks := weekProgress(cfg, now)

	// Every configured team appears, zero-activity ones included, each with
	// its full member list in roster order.
	standings := make([]models.TeamStanding, 0, len(cfg.Teams))
	for _, team := range cfg.Teams {
		st := models.TeamStanding{
			TeamID:      team.ID,
			DisplayName: team.DisplayName,
			Color:       team.Color,
			MonthlyGoal: team.MonthlyGoal,
			Members:     make([]models.MemberStats, 0, len(team.Members)),
		}

		for _, owner := range team.Members {
			ot := totals[owner]
			if ot == nil {
				ot = &ownerTotals{}
			}
			st.ProposalsPresented += ot.presented
			st.ProposalsWon += ot.won
			st.ClosingsCount += ot.closings
			st.Revenue += ot.revenue

			st.Members = append(st.Members, models.MemberStats{
				Owner:              owner,
				ProposalsPresented: ot.presented,
				ProposalsWon:       ot.won,
				Revenue:            ot.revenue,
				ConversionRate:     conversionRate(ot.won, ot.presented),
			})
		}

		if team.MonthlyGoal > 0 {
			st.GoalPercentage = int(math.Round(st.Revenue / team.MonthlyGoal * 100))
		}
		st.ConversionRate = conversionRate(st.ProposalsWon, st.ProposalsPresented)
		st.MicroGoalsAchieved = microGoals(st.Revenue, team.MonthlyGoal, totalWeeks, elapsedWeeks)

		w := cfg.Weights
		st.Points = st.ProposalsPresented*w.Presented +
			st.ProposalsWon*w.Won +
			st.ClosingsCount*w.Closing +
			st.MicroGoalsAchieved*w.MicroBonus
		if st.GoalPercentage >= 100 {
			st.Points += w.GoalBonus
		}

		standings = append(standings, st)
	}

	// Stable sort: equal points and conversion keep configuration order.
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].ConversionRate > standings[j].ConversionRate
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	report := models.Report{Teams: standings}
	if qualifying == 0 {
		report.Advisory = "no qualifying records in the campaign window yet"
	}
	return report
}

// conversionRate is won/presented as a percentage, rounded to 2 decimals.
// Zero presented proposals means zero conversion, regardless of wins.
func conversionRate(won, presented int) float64 {
	if presented == 0 {
		return 0
	}
	return math.Round(float64(won)/float64(presented)*100*100) / 100
}

// weekProgress splits the campaign window into whole weeks and reports how
// many have elapsed at now. now before the window start counts as zero weeks;
// now past the end is capped at the window end.
func weekProgress(cfg campaign.Config, now time.Time) (totalWeeks, elapsedWeeks int) {
	start, end := cfg.WindowFor(now)
	if !end.After(start) {
		return 0, 0
	}

	campaignDays := int(math.Ceil(end.Sub(start).Hours() / 24))
	totalWeeks = ceilDiv(campaignDays, 7)

	cutoff := now
	if cutoff.After(end) {
		cutoff = end
	}
	if cutoff.Before(start) {
		return totalWeeks, 0
	}
	elapsedDays := int(math.Ceil(cutoff.Sub(start).Hours() / 24))
	elapsedWeeks = ceilDiv(elapsedDays, 7)
	return totalWeeks, elapsedWeeks
}

// microGoals counts how many weekly slices of the monthly goal the revenue
// covers, capped at the number of elapsed weeks.
func microGoals(revenue, monthlyGoal float64, totalWeeks, elapsedWeeks int) int {
	if totalWeeks <= 0 || monthlyGoal <= 0 || revenue <= 0 {
		return 0
	}
	weeklyGoal := monthlyGoal / float64(totalWeeks)
	achieved := int(math.Floor(revenue / weeklyGoal))
	if achieved > elapsedWeeks {
		achieved = elapsedWeeks
	}
	return achieved
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
