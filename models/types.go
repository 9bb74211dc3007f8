package models

import "time"

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpsertClosedSaleRequest struct {
	DealID   int64    `json:"deal_id"`
	Owner    string   `json:"owner"`
	Value    *float64 `json:"value"`
	ClosedAt string   `json:"closed_at"` // YYYY-MM-DD, defaults to today
}

type UpsertClosingRequest struct {
	Number   string   `json:"number"`
	Owner    string   `json:"owner"`
	Value    *float64 `json:"value"`
	ClosedAt string   `json:"closed_at"` // YYYY-MM-DD, defaults to today
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type UpsertClosedSaleResponse struct {
	Sale ClosedSale `json:"sale"`
}

type UpsertClosingResponse struct {
	Closing ManualClosing `json:"closing"`
}

type ListClosedSalesResponse struct {
	Sales []ClosedSale `json:"sales"`
}

type ListClosingsResponse struct {
	Closings []ManualClosing `json:"closings"`
}

type DBHealthResponse struct {
	Reachable bool            `json:"reachable"`
	Tables    map[string]bool `json:"tables"`
	Message   string          `json:"message,omitempty"`
}

// Domain types

// DealRecord is one raw deal-stage row from the CRM sync table. The same
// deal_id can appear many times as a deal moves through stages; only the
// earliest row inside the campaign window counts for the leaderboard.
type DealRecord struct {
	DealID     int64     `json:"deal_id"`
	Owner      string    `json:"owner"`
	Stage      string    `json:"stage"`
	Value      float64   `json:"value"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ClosedSale is a manually confirmed win, one row per deal_id.
type ClosedSale struct {
	DealID    int64     `json:"deal_id"`
	Owner     string    `json:"owner"`
	Value     float64   `json:"value"`
	ClosedAt  time.Time `json:"closed_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ManualClosing is a flat bonus-worthy closing event, unique per
// (number, owner). Its value is informational and never feeds revenue.
type ManualClosing struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Owner     string    `json:"owner"`
	Value     float64   `json:"value"`
	ClosedAt  time.Time `json:"closed_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Leaderboard result types

type MemberStats struct {
	Owner              string  `json:"owner"`
	ProposalsPresented int     `json:"proposals_presented"`
	ProposalsWon       int     `json:"proposals_won"`
	Revenue            float64 `json:"revenue"`
	ConversionRate     float64 `json:"conversion_rate"`
}

type TeamStanding struct {
	TeamID             string        `json:"team_id"`
	DisplayName        string        `json:"display_name"`
	Color              string        `json:"color"`
	ProposalsPresented int           `json:"proposals_presented"`
	ProposalsWon       int           `json:"proposals_won"`
	ClosingsCount      int           `json:"closings_count"`
	Revenue            float64       `json:"revenue"`
	MonthlyGoal        float64       `json:"monthly_goal"`
	GoalPercentage     int           `json:"goal_percentage"`
	ConversionRate     float64       `json:"conversion_rate"`
	MicroGoalsAchieved int           `json:"micro_goals_achieved"`
	Points             int           `json:"points"`
	Rank               int           `json:"rank"` // 1-indexed ranking
	Members            []MemberStats `json:"members"`
}

// Report is the full ranked leaderboard. Advisory is set when no feed had any
// qualifying rows, so the frontend can show a hint instead of an empty board.
type Report struct {
	Teams    []TeamStanding `json:"teams"`
	Advisory string         `json:"advisory,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
