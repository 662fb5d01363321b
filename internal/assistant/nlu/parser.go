package nlu

import (
	"regexp"
	"strings"
	"time"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/datemath"
)

const (
	// MatchConfidence is assigned as soon as any intent phrase fires.
	// It is a categorical flag, not a probabilistic score.
	MatchConfidence = 0.8

	// maxTitleWords caps the free-text title extracted from an utterance.
	maxTitleWords = 10
)

var punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// Parser turns a raw Portuguese utterance into a ParsedCommand.
// It is pure and total: the worst case is IntentUnknown with confidence 0.
type Parser struct {
	dates *datemath.Resolver
	now   func() time.Time
}

// NewParser creates a parser that resolves relative dates against the
// resolver's timezone.
func NewParser(dates *datemath.Resolver) *Parser {
	return &Parser{dates: dates, now: time.Now}
}

// Parse classifies the utterance's intent and extracts its entities.
func (p *Parser) Parse(utterance string) assistant.ParsedCommand {
	text := strings.ToLower(strings.TrimSpace(utterance))

	cmd := assistant.ParsedCommand{Intent: assistant.IntentUnknown}

	for _, ip := range intentTable {
		for _, phrase := range ip.phrases {
			if strings.Contains(text, phrase) {
				cmd.Intent = ip.intent
				cmd.Confidence = MatchConfidence
				break
			}
		}
		if cmd.Confidence > 0 {
			break
		}
	}

	now := p.now()
	for _, dp := range dateTable {
		if strings.Contains(text, dp.phrase) {
			cmd.Entities.Date = p.dates.OffsetISO(now, dp.offsetDays)
			break
		}
	}

	for _, tp := range timeTable {
		if strings.Contains(text, tp.phrase) {
			cmd.Entities.Time = tp.clock
			break
		}
	}

	cmd.Entities.Recurrence = matchRecurrence(text)

	if freeText := extractFreeText(text); freeText != "" {
		switch cmd.Intent {
		case assistant.IntentCreateTask, assistant.IntentEditTask, assistant.IntentDeleteTask:
			cmd.Entities.Title = freeText
		case assistant.IntentCreateAlarm, assistant.IntentEditAlarm, assistant.IntentDeleteAlarm:
			cmd.Entities.Description = freeText
		}
	}

	// A create is underspecified until it carries a date (tasks) or a date
	// and a time (alarms); underspecified creates must be clarified before
	// being committed.
	switch cmd.Intent {
	case assistant.IntentCreateTask:
		cmd.RequiresConfirmation = cmd.Entities.Date == ""
	case assistant.IntentCreateAlarm:
		cmd.RequiresConfirmation = cmd.Entities.Date == "" || cmd.Entities.Time == ""
	}

	return cmd
}

// matchRecurrence always resolves to a concrete value; "none" is the default
// when no recurrence phrase is present.
func matchRecurrence(text string) model.Recurrence {
	for _, phrase := range dailyPhrases {
		if strings.Contains(text, phrase) {
			return model.RecurrenceDaily
		}
	}
	for _, phrase := range weeklyPhrases {
		if strings.Contains(text, phrase) {
			return model.RecurrenceWeekly
		}
	}
	return model.RecurrenceNone
}

// extractFreeText strips every table key (first occurrence each, regardless
// of which one matched), drops punctuation, collapses whitespace and caps
// the result at maxTitleWords tokens.
func extractFreeText(text string) string {
	for _, ip := range intentTable {
		for _, phrase := range ip.phrases {
			text = strings.Replace(text, phrase, "", 1)
		}
	}
	for _, dp := range dateTable {
		text = strings.Replace(text, dp.phrase, "", 1)
	}
	for _, tp := range timeTable {
		text = strings.Replace(text, tp.phrase, "", 1)
	}

	text = punctuationRe.ReplaceAllString(text, "")

	words := strings.Fields(text)
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}
	return strings.Join(words, " ")
}
