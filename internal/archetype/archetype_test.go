package archetype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersFor(choices map[string]string) AnswerSet {
	out := make(AnswerSet, len(choices))
	for qid, choice := range choices {
		out[qid] = Answer{QuestionID: qid, ChoiceID: choice}
	}
	return out
}

func fullAnswers() AnswerSet {
	return answersFor(map[string]string{
		"decision_style": "opportunistic",
		"innovation":     "early_adopter",
		"risk":           "low",
		"collaboration":  "networker",
		"vision":         "market_trends",
	})
}

func TestResolve(t *testing.T) {
	t.Run("known combination resolves from the table", func(t *testing.T) {
		arch, diags := Resolve(fullAnswers())

		want, ok := combinationTable["opportunistic:early_adopter:low:networker:market_trends"]
		require.True(t, ok)
		assert.Equal(t, want, arch.Key)
		assert.Empty(t, diags)
		assert.NotEmpty(t, arch.DisplayName)
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		first, _ := Resolve(fullAnswers())
		for i := 0; i < 10; i++ {
			again, _ := Resolve(fullAnswers())
			assert.Equal(t, first, again)
		}
	})

	t.Run("missing answer falls back to default with warning", func(t *testing.T) {
		answers := fullAnswers()
		delete(answers, "risk")

		arch, diags := Resolve(answers)
		assert.Equal(t, DefaultKey, arch.Key)
		require.Len(t, diags, 1)
		assert.Equal(t, "warn", diags[0].Level)
	})

	t.Run("blank choice counts as missing", func(t *testing.T) {
		answers := fullAnswers()
		answers["vision"] = Answer{QuestionID: "vision", ChoiceID: "  "}

		arch, diags := Resolve(answers)
		assert.Equal(t, DefaultKey, arch.Key)
		assert.NotEmpty(t, diags)
	})

	t.Run("unknown combination falls back to default with warning", func(t *testing.T) {
		answers := fullAnswers()
		answers["risk"] = Answer{QuestionID: "risk", ChoiceID: "reckless"}

		arch, diags := Resolve(answers)
		assert.Equal(t, DefaultKey, arch.Key)
		require.Len(t, diags, 1)
	})

	t.Run("empty answer set never panics", func(t *testing.T) {
		arch, diags := Resolve(AnswerSet{})
		assert.Equal(t, DefaultKey, arch.Key)
		assert.NotEmpty(t, diags)
	})
}

func TestCombinationTableExhaustive(t *testing.T) {
	total := 1
	for _, q := range Questions {
		total *= len(q.Options)
	}
	assert.Len(t, combinationTable, total)

	valid := map[Key]bool{Visionary: true, Strategist: true, Catalyst: true, Guardian: true, Integrator: true}

	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		if depth == len(Questions) {
			mapped, ok := combinationTable[prefix]
			require.True(t, ok, "combination %q missing from table", prefix)
			assert.True(t, valid[mapped], "combination %q maps to unknown archetype %q", prefix, mapped)
			return
		}
		for _, opt := range Questions[depth].Options {
			key := opt.ID
			if prefix != "" {
				key = prefix + keySeparator + opt.ID
			}
			walk(key, depth+1)
		}
	}
	walk("", 0)
}

func TestAnswerUnmarshalJSON(t *testing.T) {
	t.Run("bare string", func(t *testing.T) {
		var set AnswerSet
		require.NoError(t, json.Unmarshal([]byte(`{"risk":"high"}`), &set))
		assert.Equal(t, "high", set["risk"].ChoiceID)
	})

	t.Run("full object", func(t *testing.T) {
		var set AnswerSet
		require.NoError(t, json.Unmarshal([]byte(`{"risk":{"questionId":"risk","choiceId":"low","intensity":0.5}}`), &set))
		assert.Equal(t, "low", set["risk"].ChoiceID)
		assert.Equal(t, 0.5, set["risk"].Intensity)
	})
}

func TestAnswerSetLabels(t *testing.T) {
	answers := answersFor(map[string]string{
		"risk":   "high",
		"vision": "made_up_choice",
	})

	labels := answers.Labels()
	assert.Equal(t, "Go big or go home", labels["Risk tolerance"])
	// Unknown choices pass through as-is rather than disappearing.
	assert.Equal(t, "made_up_choice", labels["Vision focus"])
	assert.Len(t, labels, 2)
}

func TestByKeyUnknownFallsBack(t *testing.T) {
	arch := ByKey(Key("nonsense"))
	assert.Equal(t, DefaultKey, arch.Key)
}
