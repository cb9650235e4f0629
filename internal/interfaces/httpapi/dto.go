package httpapi

import (
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	"github.com/riskibarqy/match-tally/internal/usecase"
)

type setActiveTeamRequest struct {
	Team string `json:"team" validate:"required,oneof=home opponent HOME OPPONENT"`
}

type resetTeamRequest struct {
	Confirm bool `json:"confirm"`
}

type statValueDTO struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type teamRecordDTO struct {
	Team        string         `json:"team"`
	DisplayName string         `json:"display_name"`
	Stats       []statValueDTO `json:"stats"`
	Total       int64          `json:"total"`
}

type tallyStateDTO struct {
	ActiveTeam string        `json:"active_team"`
	Home       teamRecordDTO `json:"home"`
	Opponent   teamRecordDTO `json:"opponent"`
}

type activeTeamDTO struct {
	ActiveTeam string `json:"active_team"`
}

type resetTeamDTO struct {
	Team   string         `json:"team"`
	Reset  bool           `json:"reset"`
	Prompt string         `json:"prompt,omitempty"`
	Record *teamRecordDTO `json:"record,omitempty"`
}

type statGroupDTO struct {
	Key   string   `json:"key"`
	Split string   `json:"split"`
	Stats []string `json:"stats"`
}

type catalogDTO struct {
	Stats  []string       `json:"stats"`
	Groups []statGroupDTO `json:"groups"`
}

// recordToDTO lists stats in catalog order. Names a stored record carries
// outside the catalog are not shown.
func recordToDTO(team tally.Team, record tally.Record) teamRecordDTO {
	names := tally.StatNames()
	stats := make([]statValueDTO, 0, len(names))
	for _, name := range names {
		value, ok := record.Lookup(name)
		if !ok {
			continue
		}
		stats = append(stats, statValueDTO{Name: string(name), Value: value})
	}

	return teamRecordDTO{
		Team:        string(team),
		DisplayName: team.DisplayName(),
		Stats:       stats,
		Total:       record.Total(),
	}
}

func stateToDTO(state usecase.TallyState) tallyStateDTO {
	return tallyStateDTO{
		ActiveTeam: string(state.ActiveTeam),
		Home:       recordToDTO(tally.TeamHome, state.Record(tally.TeamHome)),
		Opponent:   recordToDTO(tally.TeamOpponent, state.Record(tally.TeamOpponent)),
	}
}

func catalogToDTO() catalogDTO {
	names := tally.StatNames()
	stats := make([]string, 0, len(names))
	for _, name := range names {
		stats = append(stats, string(name))
	}

	groups := tally.StatGroups()
	items := make([]statGroupDTO, 0, len(groups))
	for _, group := range groups {
		members := make([]string, 0, len(group.Stats))
		for _, name := range group.Stats {
			members = append(members, string(name))
		}
		items = append(items, statGroupDTO{
			Key:   group.Key,
			Split: string(group.Split),
			Stats: members,
		})
	}

	return catalogDTO{Stats: stats, Groups: items}
}
