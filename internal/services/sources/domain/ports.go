package domain

import "context"

// CheckerPort is consumed by the analysis pipeline
type CheckerPort interface {
	CheckFacts(ctx context.Context, text string) (Result, error)
}

// Provider is one external lookup backend
// a failing provider returns an error and contributes nothing, it never
// aborts the whole check
type Provider interface {
	Name() string
	Lookup(ctx context.Context, text string) ([]Source, error)
}
