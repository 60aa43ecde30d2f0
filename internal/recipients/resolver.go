package recipients

import (
	"strings"

	"outreach/internal/columns"
	"outreach/internal/survey"
)

// Placeholder substitutes missing free-text answers so every prompt field
// carries a value.
const Placeholder = "-"

// Answers holds the three survey answers the prompt is built from.
type Answers struct {
	Interest   string
	Motivation string
	Enrollment string
}

// Recipient is one pending survey row, resolved to the fields the pipeline
// needs and discarded once its send attempt completes.
type Recipient struct {
	ID         string
	Name       string
	Email      string
	CoachEmail string
	Answers    Answers
}

// Resolve returns the recipients whose id is not in the processed set, in
// table order.
func Resolve(table *survey.Table, cols columns.Map, processed map[string]struct{}) []Recipient {
	pending := make([]Recipient, 0, len(table.Rows))
	for _, row := range table.Rows {
		id := strings.TrimSpace(row[cols.ID])
		if _, done := processed[id]; done {
			continue
		}
		pending = append(pending, Recipient{
			ID:         id,
			Name:       strings.TrimSpace(row[cols.Name]),
			Email:      strings.TrimSpace(row[cols.Email]),
			CoachEmail: strings.TrimSpace(row[cols.CoachEmail]),
			Answers: Answers{
				Interest:   answerOrPlaceholder(row[cols.Interest]),
				Motivation: answerOrPlaceholder(row[cols.Motivation]),
				Enrollment: answerOrPlaceholder(row[cols.Enrollment]),
			},
		})
	}
	return pending
}

func answerOrPlaceholder(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Placeholder
	}
	return trimmed
}
