// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package campaign

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Weights are the point formula coefficients. They are configuration rather
// than constants: the campaign has already run with more than one scheme.
type Weights struct {
	Presented  int `yaml:"presented"`
	Won        int `yaml:"won"`
	Closing    int `yaml:"closing"`
	GoalBonus  int `yaml:"goal_bonus"`
	MicroBonus int `yaml:"micro_bonus"`
}

// Team is one fixed competing team. Members lists the CRM owner names that
// roll up into it; an owner must appear in exactly one team.
type Team struct {
	ID          string   `yaml:"id"`
	DisplayName string   `yaml:"display_name"`
	Color       string   `yaml:"color"`
	MonthlyGoal float64  `yaml:"monthly_goal"`
	Members     []string `yaml:"members"`
}

// WindowBounds fixes the campaign period as month/day pairs. The year always
// comes from the evaluation clock, never from configuration.
type WindowBounds struct {
	StartMonth time.Month `yaml:"start_month"`
	StartDay   int        `yaml:"start_day"`
	EndMonth   time.Month `yaml:"end_month"`
	EndDay     int        `yaml:"end_day"`
}

type Config struct {
	// PresentedStage is the stage label that counts as a presented proposal.
	PresentedStage string       `yaml:"presented_stage"`
	Window         WindowBounds `yaml:"window"`
	Weights        Weights      `yaml:"weights"`
	Teams          []Team       `yaml:"teams"`
}

// Default returns the production campaign as it has been run so far: three
// teams, R$800k monthly goal each, window Nov 5 through Dec 20.
func Default() Config {
	return Config{
		PresentedStage: "Negociações iniciadas",
		Window: WindowBounds{
			StartMonth: time.November, StartDay: 5,
			EndMonth: time.December, EndDay: 20,
		},
		Weights: Weights{
			Presented:  1,
			Won:        1,
			Closing:    5,
			GoalBonus:  30,
			MicroBonus: 10,
		},
		Teams: []Team{
			{
				ID:          "Ana Carolina",
				DisplayName: "Time da Diligência",
				Color:       "#8B5CF6",
				MonthlyGoal: 800000,
				Members:     []string{"Ana Carolina", "Ana Campos", "Ana Regnier", "Agatha Oliveira", "Bruno"},
			},
			{
				ID:          "Caroline Dandara",
				DisplayName: "Ninjas do Fechamento",
				Color:       "#10B981",
				MonthlyGoal: 800000,
				Members:     []string{"Caroline Dandara", "Davi", "Alex Henrique", "Assib Zattar Neto"},
			},
			{
				ID:          "Caio",
				DisplayName: "Os Gênios da Comissão",
				Color:       "#EF4444",
				MonthlyGoal: 800000,
				Members:     []string{"Caio", "Kauany", "Daniely", "Byanka"},
			},
		},
	}
}

// Load reads a campaign file and overlays it on the defaults, so a file only
// needs to spell out what changes (usually teams and weights).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read campaign file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse campaign file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the roster is a partition: every owner in exactly one
// team, no empty team list, no team without an ID.
func (c Config) Validate() error {
	if len(c.Teams) == 0 {
		return fmt.Errorf("campaign has no teams")
	}
	if c.PresentedStage == "" {
		return fmt.Errorf("campaign has no presented_stage label")
	}

	seenTeam := make(map[string]bool)
	seenOwner := make(map[string]string)
	for _, t := range c.Teams {
		if t.ID == "" {
			return fmt.Errorf("campaign team without id")
		}
		if seenTeam[t.ID] {
			return fmt.Errorf("duplicate team %q", t.ID)
		}
		seenTeam[t.ID] = true

		for _, m := range t.Members {
			if other, ok := seenOwner[m]; ok {
				return fmt.Errorf("owner %q listed in both %q and %q", m, other, t.ID)
			}
			seenOwner[m] = t.ID
		}
	}
	return nil
}

// TeamOf resolves an owner to their team ID. Unknown owners fail closed:
// ok is false and the owner contributes to no aggregate.
func (c Config) TeamOf(owner string) (string, bool) {
	for _, t := range c.Teams {
		for _, m := range t.Members {
			if m == owner {
				return t.ID, true
			}
		}
	}
	return "", false
}

// MembersOf returns the member list of a team, nil for an unknown team.
func (c Config) MembersOf(teamID string) []string {
	for _, t := range c.Teams {
		if t.ID == teamID {
			return t.Members
		}
	}
	return nil
}

// Owners returns every roster member across all teams, in declaration order.
func (c Config) Owners() []string {
	var out []string
	for _, t := range c.Teams {
		out = append(out, t.Members...)
	}
	return out
}

// WindowFor returns the campaign bounds for the year of now. Both bounds are
// inclusive dates at midnight UTC.
func (c Config) WindowFor(now time.Time) (start, end time.Time) {
	year := now.Year()
	start = time.Date(year, c.Window.StartMonth, c.Window.StartDay, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, c.Window.EndMonth, c.Window.EndDay, 0, 0, 0, 0, time.UTC)
	return start, end
}
