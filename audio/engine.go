package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays short synthesized cues for game events. A nil *Engine is
// valid and silent, so callers never branch on audio availability.
type Engine struct{}

// NewEngine initializes the speaker. Failure is not fatal to the game;
// callers simply keep playing without sound.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Engine{}, nil
}

// tone plays a sine tone without blocking the game loop
func (e *Engine) tone(freq float64, d time.Duration) {
	if e == nil {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// RowsCleared plays a confirmation tone, pitched up for bigger clears
func (e *Engine) RowsCleared(count int) {
	e.tone(440+110*float64(count), 80*time.Millisecond)
}

// GameOver plays a low tone when the board fills up
func (e *Engine) GameOver() {
	e.tone(110, 300*time.Millisecond)
}
