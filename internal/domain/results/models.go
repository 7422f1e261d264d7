package results

import "github.com/avatarneil/bracket.build/internal/domain/teams"

// Status mirrors the shared contract for live game lifecycle states.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinal      Status = "FINAL"
)

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Result is the live state of one real playoff game, keyed by the bracket
// matchup it corresponds to.
type Result struct {
	MatchupID string     `json:"matchupId"`
	Provider  string     `json:"provider"`
	HomeTeam  teams.Team `json:"homeTeam"`
	AwayTeam  teams.Team `json:"awayTeam"`
	StartTime string     `json:"startTime"`
	Status    Status     `json:"status"`
	Score     Score      `json:"score"`
}

// Started reports whether the real game is underway or finished. Unknown
// statuses count as not started so they never lock a matchup by accident.
func (r Result) Started() bool {
	return r.Status == StatusInProgress || r.Status == StatusFinal
}

// ListResponse is the payload returned by /results.
type ListResponse struct {
	UpdatedAt string   `json:"updatedAt"`
	Results   []Result `json:"results"`
}

// NewListResponse builds a ListResponse payload.
func NewListResponse(updatedAt string, rs []Result) ListResponse {
	return ListResponse{
		UpdatedAt: updatedAt,
		Results:   rs,
	}
}
