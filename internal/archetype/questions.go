package archetype

type Option struct {
	ID    string
	Label string
}

type Question struct {
	ID      string
	Title   string
	Options []Option
}

// Questions is the fixed survey, in the order used to build table keys.
var Questions = []Question{
	{
		ID:    "decision_style",
		Title: "Decision style",
		Options: []Option{
			{ID: "analytical", Label: "Data first, always"},
			{ID: "intuitive", Label: "Gut feeling, refined by experience"},
			{ID: "opportunistic", Label: "Whatever the moment rewards"},
		},
	},
	{
		ID:    "innovation",
		Title: "Innovation mindset",
		Options: []Option{
			{ID: "early_adopter", Label: "First in line for anything new"},
			{ID: "pragmatist", Label: "New tools once they prove out"},
			{ID: "traditionalist", Label: "The proven way is the way"},
		},
	},
	{
		ID:    "risk",
		Title: "Risk tolerance",
		Options: []Option{
			{ID: "low", Label: "Protect the downside"},
			{ID: "moderate", Label: "Calculated bets only"},
			{ID: "high", Label: "Go big or go home"},
		},
	},
	{
		ID:    "collaboration",
		Title: "Collaboration style",
		Options: []Option{
			{ID: "solo", Label: "Deep work, alone"},
			{ID: "networker", Label: "Everything through people"},
			{ID: "team_builder", Label: "Build the team, then the thing"},
		},
	},
	{
		ID:    "vision",
		Title: "Vision focus",
		Options: []Option{
			{ID: "market_trends", Label: "Ride the market"},
			{ID: "long_term", Label: "Decade-out horizon"},
			{ID: "people_first", Label: "People over everything"},
		},
	},
}

func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func (q Question) OptionLabel(choiceID string) (string, bool) {
	for _, o := range q.Options {
		if o.ID == choiceID {
			return o.Label, true
		}
	}
	return "", false
}
