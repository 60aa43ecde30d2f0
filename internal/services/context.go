package services

import "context"

type contextKey string

const (
	runIDKey       contextKey = "run_id"
	recipientIDKey contextKey = "recipient_id"
)

// WithRunID stamps the campaign run identifier onto the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunID extracts the campaign run identifier, if present.
func RunID(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(runIDKey).(string)
	return value, ok && value != ""
}

// WithRecipientID stamps the recipient currently being processed.
func WithRecipientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, recipientIDKey, id)
}

// RecipientID extracts the recipient identifier, if present.
func RecipientID(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(recipientIDKey).(string)
	return value, ok && value != ""
}
