package scoreboard

type scoreboardResponse struct {
	Data []gameResponse `json:"data"`
}

type gameResponse struct {
	ID         int          `json:"id"`
	Round      string       `json:"round"`
	Conference string       `json:"conference"`
	HomeTeam   teamResponse `json:"home_team"`
	AwayTeam   teamResponse `json:"away_team"`
	HomeScore  int          `json:"home_score"`
	AwayScore  int          `json:"away_score"`
	Status     string       `json:"status"`
	StartTime  string       `json:"start_time"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}
