package domain

import "context"

// Chime signals a completed order. Implementations can play a sound
// through the audio device or do nothing.
type Chime interface {
	Ring(ctx context.Context) error
}
