package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Note is one segment of a tone.
type Note struct {
	Freq     float64 // Hz; 0 is silence
	Duration time.Duration
}

// OrderPlaced is the rising two-note chime played after checkout.
var OrderPlaced = []Note{
	{Freq: 880, Duration: 120 * time.Millisecond},
	{Freq: 1320, Duration: 180 * time.Millisecond},
}

const (
	amplitude = 0.25 * math.MaxInt16
	fade      = 5 * time.Millisecond
)

// Tone renders notes as mono signed 16-bit little-endian PCM. Each note
// fades in and out to avoid clicks between segments.
func Tone(notes []Note, sampleRate int) []byte {
	var total int
	for _, n := range notes {
		total += samples(n.Duration, sampleRate)
	}

	buf := make([]byte, 0, total*2)
	fadeLen := samples(fade, sampleRate)

	for _, n := range notes {
		count := samples(n.Duration, sampleRate)
		for i := 0; i < count; i++ {
			env := 1.0
			if fadeLen > 0 {
				if i < fadeLen {
					env = float64(i) / float64(fadeLen)
				}
				if tail := count - 1 - i; tail < fadeLen {
					env = math.Min(env, float64(tail)/float64(fadeLen))
				}
			}
			t := float64(i) / float64(sampleRate)
			v := amplitude * env * math.Sin(2*math.Pi*n.Freq*t)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(v)))
		}
	}
	return buf
}

func samples(d time.Duration, sampleRate int) int {
	return int(math.Round(d.Seconds() * float64(sampleRate)))
}
