// Package audio plays the goal cue.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/console-pong/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// bell is the terminal bell, used when no audio device is available.
const bell = "\a"

// Tone plays a short sine tone on every Beep. Until Init succeeds it rings
// the terminal bell instead.
type Tone struct {
	mu       sync.Mutex
	cfg      config.SoundConfig
	fallback io.Writer
	log      *log.Logger
	ready    bool
}

// NewTone creates a goal cue. fallback receives the terminal bell.
func NewTone(cfg config.SoundConfig, fallback io.Writer, logger *log.Logger) *Tone {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tone{
		cfg:      cfg,
		fallback: fallback,
		log:      logger,
	}
}

// Init opens the audio device. Failure is not fatal: the bell is used.
func (t *Tone) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.cfg.Enabled || t.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		t.log.Warn("audio unavailable, using terminal bell", "error", err)
		return err
	}
	t.ready = true
	return nil
}

// Beep plays the cue without blocking.
func (t *Tone) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.cfg.Enabled {
		return
	}
	if !t.ready {
		t.ring()
		return
	}

	sine, err := generators.SineTone(sampleRate, t.cfg.FrequencyHz)
	if err != nil {
		t.log.Warn("cannot build tone", "frequency", t.cfg.FrequencyHz, "error", err)
		t.ring()
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.cfg.ToneDuration()), sine),
		Base:     2,
		Volume:   -2,
	})
}

// Close releases the audio device.
func (t *Tone) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ready {
		speaker.Clear()
		speaker.Close()
		t.ready = false
	}
}

func (t *Tone) ring() {
	if t.fallback == nil {
		return
	}
	//nolint:errcheck // Best-effort bell
	io.WriteString(t.fallback, bell)
}
