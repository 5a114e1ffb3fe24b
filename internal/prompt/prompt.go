package prompt

import (
	"strings"

	"agent-sticker-kiosk/internal/archetype"
)

type Options struct {
	IncludeSelfie        bool
	IncludePhotoGuidance bool
}

const styleParagraph = `STYLE (STRICT):
- Bold flat-illustration portrait, single centered character, front-facing.
- Palette: deep navy background, warm amber and coral accents, off-white highlights.
- Clean geometric shapes, no gradients heavier than two stops, no photorealism.
- Square composition with generous headroom; subject fills the middle two thirds.
- No text, no letters, no logos, no watermarks anywhere in the image.`

const selfieSentence = `Subtly echo the facial features, hair shape, and skin tone of the attached reference photo in the illustrated character. Do not paste, trace, or crop the photo itself; the result must read as an original illustration.`

const photoGuidance = `The attached photo is a likeness reference only. Ignore its background, clothing, and lighting entirely.`

// Build renders the generation instruction for one completed survey.
// It always returns a usable prompt; unanswered questions simply contribute
// nothing to the traits line.
func Build(arch archetype.Archetype, answers archetype.AnswerSet, opts Options) string {
	var b strings.Builder
	b.Grow(1024)

	b.WriteString("TASK: Illustrated personality-agent sticker portrait.\n\n")
	b.WriteString("ARCHETYPE: " + arch.DisplayName + "\n")
	b.WriteString("- Embody this archetype through posture, expression, and props, not through text.\n\n")

	if traits := traitsLine(answers); traits != "" {
		b.WriteString("Traits: " + traits + "\n\n")
	}

	b.WriteString(styleParagraph)

	if opts.IncludeSelfie {
		b.WriteString("\n\n" + selfieSentence)
		if opts.IncludePhotoGuidance {
			b.WriteString("\n" + photoGuidance)
		}
	}

	return b.String()
}

func traitsLine(answers archetype.AnswerSet) string {
	fragments := make([]string, 0, len(archetype.Questions))
	for _, q := range archetype.Questions {
		ans, ok := answers[q.ID]
		if !ok || strings.TrimSpace(ans.ChoiceID) == "" {
			continue
		}
		label, ok := q.OptionLabel(ans.ChoiceID)
		if !ok {
			label = ans.ChoiceID
		}
		fragments = append(fragments, q.Title+": "+label)
	}
	return strings.Join(fragments, "; ")
}
