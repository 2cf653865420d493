// Package speech provides a timed SpeechEngine that stands in for a device TTS voice.
package speech

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"audiotour/config"
	"audiotour/internal/domain/service"
	"audiotour/internal/errors"

	"go.uber.org/fx"
)

const defaultWordsPerMinute = 150

var (
	// ErrNotSpeaking is returned by Pause and Resume when nothing is playing.
	ErrNotSpeaking = errors.New("no utterance in progress")
	// ErrClosed is returned by Speak after Close.
	ErrClosed = errors.New("speech engine closed")
)

// Simulator narrates by waiting for as long as reading the text aloud would take.
type Simulator struct {
	cfg    config.SpeechConfig
	logger *slog.Logger

	mu      sync.Mutex
	current *utterance
	closed  bool
}

type utterance struct {
	words     int
	finished  func(err error)
	timer     *time.Timer
	startedAt time.Time
	remaining time.Duration
	paused    bool
}

// Params holds dependencies for the speech engine, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSpeechEngine creates the simulated engine and stops it with the application.
func NewSpeechEngine(params Params) service.SpeechEngine {
	sim := NewSimulator(params.Config.Speech, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sim.Close()

			return nil
		},
	})

	return sim
}

// NewSimulator creates a simulator; zero config values fall back to 150 wpm
// with no duration clamp.
func NewSimulator(cfg config.SpeechConfig, logger *slog.Logger) *Simulator {
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = defaultWordsPerMinute
	}

	return &Simulator{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "speech")),
	}
}

// Duration reports how long text takes to narrate.
func (s *Simulator) Duration(text string) time.Duration {
	words := len(strings.Fields(text))
	d := time.Duration(float64(words) / float64(s.cfg.WordsPerMinute) * float64(time.Minute))

	if s.cfg.MinDuration > 0 && d < s.cfg.MinDuration {
		d = s.cfg.MinDuration
	}
	if s.cfg.MaxDuration > 0 && d > s.cfg.MaxDuration {
		d = s.cfg.MaxDuration
	}

	return d
}

// Speak starts a new utterance. An utterance already in progress is cancelled first.
func (s *Simulator) Speak(text string, finished func(err error)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return ErrClosed
	}

	previous := s.detach()

	u := &utterance{
		words:     len(strings.Fields(text)),
		finished:  finished,
		startedAt: time.Now(),
		remaining: s.Duration(text),
	}
	u.timer = time.AfterFunc(u.remaining, func() { s.complete(u) })
	s.current = u
	s.mu.Unlock()

	s.logger.Debug("Speaking", slog.Int("words", u.words), slog.Duration("duration", u.remaining))
	cancelled(previous)

	return nil
}

// Pause freezes the current utterance, keeping the time left.
func (s *Simulator) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.current
	if u == nil {
		return ErrNotSpeaking
	}
	if u.paused {
		return nil
	}
	if !u.timer.Stop() {
		// Already fired; completion is on its way.
		return ErrNotSpeaking
	}

	u.remaining -= time.Since(u.startedAt)
	if u.remaining < 0 {
		u.remaining = 0
	}
	u.paused = true

	return nil
}

// Resume continues a paused utterance for its remaining time.
func (s *Simulator) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.current
	if u == nil {
		return ErrNotSpeaking
	}
	if !u.paused {
		return nil
	}

	u.paused = false
	u.startedAt = time.Now()
	u.timer = time.AfterFunc(u.remaining, func() { s.complete(u) })

	return nil
}

// StopImmediately cancels the current utterance; its callback receives ErrSpeechCancelled.
func (s *Simulator) StopImmediately() {
	s.mu.Lock()
	u := s.detach()
	s.mu.Unlock()

	cancelled(u)
}

// Close cancels any utterance and rejects further Speak calls.
func (s *Simulator) Close() {
	s.mu.Lock()
	s.closed = true
	u := s.detach()
	s.mu.Unlock()

	cancelled(u)
}

// IsSpeaking reports whether an utterance is in progress, paused or not.
func (s *Simulator) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current != nil
}

func (s *Simulator) complete(u *utterance) {
	s.mu.Lock()
	if s.current != u {
		s.mu.Unlock()

		return
	}
	s.current = nil
	s.mu.Unlock()

	if u.finished != nil {
		u.finished(nil)
	}
}

// detach removes the current utterance. Callers hold mu.
func (s *Simulator) detach() *utterance {
	u := s.current
	if u == nil {
		return nil
	}
	u.timer.Stop()
	s.current = nil

	return u
}

func cancelled(u *utterance) {
	if u != nil && u.finished != nil {
		u.finished(service.ErrSpeechCancelled)
	}
}

// Module provides the speech engine FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSpeechEngine),
)
