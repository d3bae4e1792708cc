package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
)

// EmotionClassifier assigns each message an EmotionalState using weighted
// keyword scoring. It is deliberately decoupled from the crisis keyword
// tables: a message with no crisis keywords can still classify as
// distressed, which is what lets the trend escalation fire on quiet
// decline.
type EmotionClassifier struct {
	labels []compiledEmotion
	now    func() time.Time
}

type compiledEmotion struct {
	name    string
	rank    int
	entries []weightedPattern
}

type weightedPattern struct {
	re     *regexp.Regexp
	weight float64
}

// NewEmotionClassifier compiles the lexicon's emotion keyword sets. Labels
// are evaluated in rank order; ties go to the worse label so ambiguity
// resolves toward caution.
func NewEmotionClassifier(lex *lexicon.Lexicon) (*EmotionClassifier, error) {
	c := &EmotionClassifier{now: time.Now}

	for _, label := range lex.Emotions {
		ce := compiledEmotion{name: label.Name, rank: label.Rank}

		// Deterministic compile order regardless of map iteration.
		keys := make([]string, 0, len(label.Keywords))
		for k := range label.Keywords {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, kw := range keys {
			norm := Normalize(kw)
			if norm == "" {
				continue
			}
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(norm) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("emotion %q keyword %q: %w", label.Name, kw, err)
			}
			ce.entries = append(ce.entries, weightedPattern{re: re, weight: label.Keywords[kw]})
		}

		c.labels = append(c.labels, ce)
	}

	if len(c.labels) == 0 {
		return nil, fmt.Errorf("no emotion labels configured")
	}

	sort.Slice(c.labels, func(i, j int) bool { return c.labels[i].rank < c.labels[j].rank })
	return c, nil
}

// Classify scores the message against every label and returns the state
// with the highest score. A message with no emotional keywords is neutral
// with zero intensity. Intensity is the capped keyword weight sum, nudged
// up slightly by exclamation marks in the raw text.
func (c *EmotionClassifier) Classify(message string) EmotionalState {
	text := Normalize(message)

	best := c.labels[0] // rank order puts neutral first
	bestScore := 0.0

	for _, label := range c.labels {
		var score float64
		for _, entry := range label.entries {
			if n := len(entry.re.FindAllString(text, -1)); n > 0 {
				if n > 3 {
					n = 3
				}
				score += entry.weight * float64(n)
			}
		}
		// >= so equal scores resolve to the higher rank.
		if score > 0 && score >= bestScore {
			best = label
			bestScore = score
		}
	}

	intensity := bestScore
	if bestScore > 0 {
		if bangs := strings.Count(message, "!"); bangs > 0 {
			intensity += 0.05 * float64(min(bangs, 4))
		}
	}
	if intensity > 1.0 {
		intensity = 1.0
	}

	return EmotionalState{
		Label:     best.name,
		Rank:      best.rank,
		Intensity: intensity,
		Timestamp: c.now().UTC(),
	}
}
