// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package leaderboard computes the ranked campaign standings.

The engine is a pure function over an in-memory snapshot of the three input
feeds. It performs no I/O and holds no state: the same snapshot and the same
clock always produce the same report.

# Pipeline

	raw deal rows → Dedupe (first touch per deal_id)
	             → per-owner fold (presented / won / closings / revenue)
	             → per-team roll-up (goal %, conversion, micro-goals, points)
	             → stable ranking (points desc, conversion desc)

# Dedup semantics

A deal appears once per stage change in the CRM export, so Dedupe keeps only
the earliest row per deal_id inside the window. Attribution is first-touch:
whoever owned the earliest row keeps the deal, even if it was reassigned
later. Rows from owners outside the roster are dropped before grouping.

# Points

	points = presented*W_presented + won*W_won + closings*W_closing
	       + goal bonus (revenue >= monthly goal)
	       + micro-goal bonus per weekly goal slice covered

All weights come from campaign.Weights; nothing here is hardcoded because the
scheme has changed between campaigns.

Every configured team appears in the output, zero-activity teams included, so
the board never loses a column mid-campaign.
*/
package leaderboard
