// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package campaign holds the campaign configuration: the roster partition of
salespeople into three fixed teams, per-team display data and monthly goals,
the point weights, the presented-proposal stage label, and the campaign window
bounds.

The built-in Default is the campaign as currently run. A YAML file can
override any part of it:

	presented_stage: "Negociações iniciadas"
	weights:
	  presented: 1
	  won: 5
	teams:
	  - id: Caio
	    display_name: Os Gênios da Comissão
	    color: "#EF4444"
	    monthly_goal: 800000
	    members: [Caio, Kauany, Daniely, Byanka]

The roster must be a partition: an owner listed in two teams is rejected by
Validate, and an owner listed nowhere contributes to nothing.
*/
package campaign
