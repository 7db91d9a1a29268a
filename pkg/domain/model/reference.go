package model

import "github.com/secmon-lab/roadmap/pkg/domain/types"

// Acronym is a glossary abbreviation
type Acronym struct {
	Term       string `json:"term" toml:"term"`
	Definition string `json:"definition" toml:"definition"`
}

// LevelDescriptor is the static description of a maturity level
type LevelDescriptor struct {
	Level       types.Level `json:"level" toml:"level"`
	Title       string      `json:"title" toml:"title"`
	Description string      `json:"description" toml:"description"`
	KPIs        []string    `json:"kpis" toml:"kpis"`
	Color       string      `json:"color" toml:"color"`
}

// MaturityLevel is a level card: the descriptor together with the practices
// bucketed into it and the names of the risks those practices mitigate.
type MaturityLevel struct {
	LevelDescriptor
	Practices []PracticeProgress `json:"practices"`
	Risks     []string           `json:"risks"`
}
