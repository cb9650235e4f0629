package tally

import (
	"fmt"
	"strings"
)

// StatName identifies one tracked in-match event counter.
type StatName string

const (
	StatShots                           StatName = "shots"
	StatCorners                         StatName = "corners"
	StatOffsides                        StatName = "offsides"
	StatChancesAfterStealsOffensiveHalf StatName = "chances_after_steals_offensive_half"
	StatChancesAfterStealsDefensiveHalf StatName = "chances_after_steals_defensive_half"
	StatAttackingStealsOffensiveHalf    StatName = "attacking_steals_offensive_half"
	StatAttackingStealsDefensiveHalf    StatName = "attacking_steals_defensive_half"
	StatOpponentErrorsOffensiveHalf     StatName = "opponent_errors_offensive_half"
	StatOpponentErrorsDefensiveHalf     StatName = "opponent_errors_defensive_half"
	StatAerialDuelsOffensive            StatName = "aerial_duels_offensive"
	StatAerialDuelsDefensive            StatName = "aerial_duels_defensive"
	StatBuildUpWon                      StatName = "build_up_won"
	StatBuildUpLost                     StatName = "build_up_lost"
	StatDefensiveLineBreakingBalls      StatName = "defensive_line_breaking_balls"
	StatCrossesSuccessful               StatName = "crosses_successful"
	StatCrossesUnsuccessful             StatName = "crosses_unsuccessful"
	StatOffensiveCornersSuccessful      StatName = "offensive_corners_successful"
	StatOffensiveCornersUnsuccessful    StatName = "offensive_corners_unsuccessful"
	StatOffensiveFoulsSuccessful        StatName = "offensive_fouls_successful"
	StatOffensiveFoulsUnsuccessful      StatName = "offensive_fouls_unsuccessful"
)

// SplitKind tells how the names inside a StatGroup are divided.
type SplitKind string

const (
	SplitNone    SplitKind = "none"
	SplitHalf    SplitKind = "half"
	SplitPhase   SplitKind = "phase"
	SplitOutcome SplitKind = "outcome"
)

// StatGroup is one presentation slot: a single counter or a pair.
type StatGroup struct {
	Key   string
	Split SplitKind
	Stats []StatName
}

var statGroups = []StatGroup{
	{Key: "shots", Split: SplitNone, Stats: []StatName{StatShots}},
	{Key: "corners", Split: SplitNone, Stats: []StatName{StatCorners}},
	{Key: "offsides", Split: SplitNone, Stats: []StatName{StatOffsides}},
	{Key: "chances_after_steals", Split: SplitHalf, Stats: []StatName{StatChancesAfterStealsOffensiveHalf, StatChancesAfterStealsDefensiveHalf}},
	{Key: "attacking_steals", Split: SplitHalf, Stats: []StatName{StatAttackingStealsOffensiveHalf, StatAttackingStealsDefensiveHalf}},
	{Key: "opponent_errors", Split: SplitHalf, Stats: []StatName{StatOpponentErrorsOffensiveHalf, StatOpponentErrorsDefensiveHalf}},
	{Key: "aerial_duels", Split: SplitPhase, Stats: []StatName{StatAerialDuelsOffensive, StatAerialDuelsDefensive}},
	{Key: "build_up", Split: SplitOutcome, Stats: []StatName{StatBuildUpWon, StatBuildUpLost}},
	{Key: "defensive_line_breaking_balls", Split: SplitNone, Stats: []StatName{StatDefensiveLineBreakingBalls}},
	{Key: "crosses", Split: SplitOutcome, Stats: []StatName{StatCrossesSuccessful, StatCrossesUnsuccessful}},
	{Key: "offensive_corners", Split: SplitOutcome, Stats: []StatName{StatOffensiveCornersSuccessful, StatOffensiveCornersUnsuccessful}},
	{Key: "offensive_fouls", Split: SplitOutcome, Stats: []StatName{StatOffensiveFoulsSuccessful, StatOffensiveFoulsUnsuccessful}},
}

// statNames is derived from statGroups so the catalog order has one source.
var statNames, statIndex = func() ([]StatName, map[StatName]int) {
	names := make([]StatName, 0, 20)
	index := make(map[StatName]int, 20)
	for _, group := range statGroups {
		for _, name := range group.Stats {
			index[name] = len(names)
			names = append(names, name)
		}
	}
	return names, index
}()

// StatNames returns every stat name in catalog order.
func StatNames() []StatName {
	return append([]StatName(nil), statNames...)
}

// StatGroups returns the presentation grouping of the catalog.
func StatGroups() []StatGroup {
	out := make([]StatGroup, 0, len(statGroups))
	for _, group := range statGroups {
		group.Stats = append([]StatName(nil), group.Stats...)
		out = append(out, group)
	}
	return out
}

func (s StatName) Valid() bool {
	_, ok := statIndex[s]
	return ok
}

func (s StatName) String() string {
	return string(s)
}

// ParseStatName accepts a wire key, ignoring surrounding space and case.
func ParseStatName(raw string) (StatName, error) {
	name := StatName(strings.ToLower(strings.TrimSpace(raw)))
	if !name.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStat, raw)
	}
	return name, nil
}
