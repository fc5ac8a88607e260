// Package chime plays a short confirmation tone through the audio device.
package chime

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
)

// Audio parameters of the generated tone.
const (
	SampleRate   = 24000
	ChannelCount = 1
)

// Compile-time interface checks.
var (
	_ domain.Chime = (*Player)(nil)
	_ domain.Chime = (*NoOp)(nil)
)

// Player plays the order-placed tone via oto.
type Player struct {
	ctx    *oto.Context
	log    *logger.Logger
	tone   []byte
	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
}

// NewPlayer opens the system audio context. Returns an error if the audio
// device is unavailable. oto allows one context per process, so create a
// single Player.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{
		ctx:  ctx,
		log:  log,
		tone: Tone(OrderPlaced, SampleRate),
	}, nil
}

// Ring plays the tone and blocks until it finishes, ctx is cancelled, or
// Stop is called.
func (p *Player) Ring(ctx context.Context) error {
	player := p.ctx.NewPlayer(bytes.NewReader(p.tone))

	p.mu.Lock()
	p.active = player
	p.mu.Unlock()

	player.Play()
	p.log.Debug("chime: playing %d bytes of PCM", len(p.tone))

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.mu.Lock()
	p.active = nil
	p.mu.Unlock()

	return player.Close()
}

// Stop interrupts the tone, if any. Safe to call concurrently and when
// nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("chime: interrupted")
	}
}

// NoOp is a chime that does nothing. Used when sound is disabled or the
// audio device is unavailable.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent chime.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Ring does nothing.
func (n *NoOp) Ring(ctx context.Context) error {
	n.log.Debug("chime no-op: would ring")
	return nil
}
