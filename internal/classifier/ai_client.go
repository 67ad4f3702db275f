package classifier

import "context"

// AIClient defines the interface for external semantic classification
// services. The classifier hands it a fully built prompt and expects the raw
// response text back; response-shape recovery and JSON parsing happen on the
// classifier side so any provider returning text can be plugged in.
type AIClient interface {
	GenerateClassification(ctx context.Context, prompt string) (string, error)
}

// CategorySource supplies a user's current allowed category names, typically
// a mix of fixed defaults and user-defined custom categories. A failing
// source is substituted with the built-in default list, never propagated.
type CategorySource interface {
	Categories(ctx context.Context, userID string) ([]string, error)
}
