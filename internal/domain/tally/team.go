package tally

import (
	"fmt"
	"strings"
)

// Team identifies which side a counter record belongs to.
type Team string

const (
	TeamHome     Team = "home"
	TeamOpponent Team = "opponent"
)

var teams = []Team{TeamHome, TeamOpponent}

// Teams returns both team identities, home first.
func Teams() []Team {
	return append([]Team(nil), teams...)
}

func (t Team) Valid() bool {
	return t == TeamHome || t == TeamOpponent
}

func (t Team) String() string {
	return string(t)
}

// StorageKey is the persistence key holding the team's record.
func (t Team) StorageKey() string {
	return string(t) + "-stats"
}

// DisplayName is the upper-case name used in confirmation prompts.
func (t Team) DisplayName() string {
	return strings.ToUpper(string(t))
}

// Other returns the opposite team.
func (t Team) Other() Team {
	if t == TeamHome {
		return TeamOpponent
	}
	return TeamHome
}

func ParseTeam(raw string) (Team, error) {
	team := Team(strings.ToLower(strings.TrimSpace(raw)))
	if !team.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, raw)
	}
	return team, nil
}
