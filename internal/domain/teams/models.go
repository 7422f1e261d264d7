package teams

// Conference identifies the two NFL conferences that feed the playoff bracket.
type Conference string

const (
	AFC Conference = "AFC"
	NFC Conference = "NFC"
)

// Team is the normalized team shape used across the bracket, results, and
// provider layers. Seed is the team's playoff seed inside its conference (1-7).
type Team struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ShortName    string     `json:"shortName"`
	Abbreviation string     `json:"abbreviation"`
	City         string     `json:"city"`
	Conference   Conference `json:"conference"`
	Seed         int        `json:"seed"`
}
