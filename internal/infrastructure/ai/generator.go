// Package ai is the text-generation collaborator. The real backend is the
// PoppyAI service; the template generator reproduces its placeholder output
// and is used whenever no API endpoint is configured.
package ai

import "context"

type ManifestoInput struct {
	Usuario    string
	Valores    string
	Proposito  string
	Superpoder string
}

// Generator produces coach replies and avatar manifestos. Implementations
// are invoked synchronously and are replaceable.
type Generator interface {
	CoachReply(ctx context.Context, message string) (string, error)
	Manifesto(ctx context.Context, in ManifestoInput) (string, error)
}
