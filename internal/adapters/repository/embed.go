package repository

import "embed"

// The reference dataset: 18 players and 9 teams.
//
//go:embed data/players.json data/teams.json
var embeddedData embed.FS
