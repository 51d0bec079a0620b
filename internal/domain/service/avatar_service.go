package service

import "context"

// AvatarGenerator produces default avatar references from a placeholder service.
type AvatarGenerator interface {
	// Generate returns a default avatar keyed by seed (display name or email).
	Generate(seed string) string

	// IsGenerated reports whether ref points at a placeholder service rather than an upload.
	IsGenerated(ref string) bool
}

// AvatarProber checks whether a photo reference still loads as an image.
type AvatarProber interface {
	Probe(ctx context.Context, ref string) bool
}
