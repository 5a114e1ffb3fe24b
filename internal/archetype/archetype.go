package archetype

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Key string

const (
	Visionary  Key = "visionary"
	Strategist Key = "strategist"
	Catalyst   Key = "catalyst"
	Guardian   Key = "guardian"
	Integrator Key = "integrator"
)

// DefaultKey is returned whenever the survey is incomplete or the answer
// combination is missing from the table.
const DefaultKey = Integrator

var displayNames = map[Key]string{
	Visionary:  "The Visionary",
	Strategist: "The Strategist",
	Catalyst:   "The Catalyst",
	Guardian:   "The Guardian",
	Integrator: "The Integrator",
}

type Archetype struct {
	Key         Key
	DisplayName string
}

func ByKey(key Key) Archetype {
	name, ok := displayNames[key]
	if !ok {
		key = DefaultKey
		name = displayNames[DefaultKey]
	}
	return Archetype{Key: key, DisplayName: name}
}

type Answer struct {
	QuestionID string  `json:"questionId"`
	ChoiceID   string  `json:"choiceId"`
	Intensity  float64 `json:"intensity,omitempty"`
}

// UnmarshalJSON accepts either a bare choice ID string or the full answer
// object.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Answer{ChoiceID: s}
		return nil
	}

	type plain Answer
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Answer(p)
	return nil
}

// AnswerSet maps question ID to the chosen answer.
type AnswerSet map[string]Answer

// Labels renders the answered questions as title/label pairs, in no
// particular order, for webhook payloads.
func (as AnswerSet) Labels() map[string]string {
	out := make(map[string]string, len(as))
	for _, q := range Questions {
		ans, ok := as[q.ID]
		if !ok || strings.TrimSpace(ans.ChoiceID) == "" {
			continue
		}
		label, ok := q.OptionLabel(ans.ChoiceID)
		if !ok {
			label = ans.ChoiceID
		}
		out[q.Title] = label
	}
	return out
}

type Diagnostic struct {
	Level   string
	Message string
}

func warnf(format string, args ...any) Diagnostic {
	return Diagnostic{Level: "warn", Message: fmt.Sprintf(format, args...)}
}

const keySeparator = ":"

// Resolve maps a completed survey to an archetype by exact table lookup.
// It never fails: missing answers or an unmapped combination fall back to the
// default archetype with a warning diagnostic.
func Resolve(answers AnswerSet) (Archetype, []Diagnostic) {
	var diags []Diagnostic

	choices := make([]string, 0, len(Questions))
	for _, q := range Questions {
		ans, ok := answers[q.ID]
		if !ok || strings.TrimSpace(ans.ChoiceID) == "" {
			diags = append(diags, warnf("question %q unanswered, using default archetype", q.ID))
			return ByKey(DefaultKey), diags
		}
		choices = append(choices, strings.TrimSpace(ans.ChoiceID))
	}

	key := strings.Join(choices, keySeparator)
	mapped, ok := combinationTable[key]
	if !ok {
		diags = append(diags, warnf("combination %q not in table, using default archetype", key))
		return ByKey(DefaultKey), diags
	}

	return ByKey(mapped), diags
}
