package speech

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"audiotour/config"
	"audiotour/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *recorder) finished(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder) results() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errs...)
}

func newTestSimulator(minDuration, maxDuration time.Duration) *Simulator {
	return NewSimulator(config.SpeechConfig{
		WordsPerMinute: 600,
		MinDuration:    minDuration,
		MaxDuration:    maxDuration,
	}, slog.New(slog.DiscardHandler))
}

func TestSimulator_Duration(t *testing.T) {
	sim := newTestSimulator(0, 0)

	// 600 wpm is 100ms per word.
	assert.Equal(t, 500*time.Millisecond, sim.Duration("one two three four five"))
	assert.Equal(t, time.Duration(0), sim.Duration(""))

	clamped := newTestSimulator(time.Second, 2*time.Second)
	assert.Equal(t, time.Second, clamped.Duration("short"))
	assert.Equal(t, 2*time.Second, clamped.Duration("a b c d e f g h i j k l m n o p q r s t u v w x y z"))
}

func TestSimulator_DefaultWordsPerMinute(t *testing.T) {
	sim := NewSimulator(config.SpeechConfig{}, slog.New(slog.DiscardHandler))

	assert.Equal(t, 150, sim.cfg.WordsPerMinute)
	assert.Equal(t, 2*time.Second, sim.Duration("a b c d e"))
}

func TestSimulator_SpeakCompletes(t *testing.T) {
	sim := newTestSimulator(20*time.Millisecond, 20*time.Millisecond)
	rec := &recorder{}

	require.NoError(t, sim.Speak("hello", rec.finished))
	assert.True(t, sim.IsSpeaking())

	assert.Eventually(t, func() bool { return len(rec.results()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rec.results()[0])
	assert.False(t, sim.IsSpeaking())
}

func TestSimulator_StopImmediately(t *testing.T) {
	sim := newTestSimulator(time.Minute, time.Minute)
	rec := &recorder{}

	require.NoError(t, sim.Speak("hello", rec.finished))
	sim.StopImmediately()

	results := rec.results()
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0], service.ErrSpeechCancelled)
	assert.False(t, sim.IsSpeaking())

	sim.StopImmediately()
	assert.Len(t, rec.results(), 1)
}

func TestSimulator_SpeakCancelsPrevious(t *testing.T) {
	sim := newTestSimulator(time.Minute, time.Minute)
	first := &recorder{}
	second := &recorder{}

	require.NoError(t, sim.Speak("first", first.finished))
	require.NoError(t, sim.Speak("second", second.finished))

	require.Len(t, first.results(), 1)
	require.ErrorIs(t, first.results()[0], service.ErrSpeechCancelled)
	assert.Empty(t, second.results())
	assert.True(t, sim.IsSpeaking())
}

func TestSimulator_PauseResume(t *testing.T) {
	sim := newTestSimulator(40*time.Millisecond, 40*time.Millisecond)
	rec := &recorder{}

	require.ErrorIs(t, sim.Pause(), ErrNotSpeaking)
	require.ErrorIs(t, sim.Resume(), ErrNotSpeaking)

	require.NoError(t, sim.Speak("hello", rec.finished))
	require.NoError(t, sim.Pause())
	require.NoError(t, sim.Pause())

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.results())
	assert.True(t, sim.IsSpeaking())

	require.NoError(t, sim.Resume())
	assert.Eventually(t, func() bool { return len(rec.results()) == 1 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, rec.results()[0])
}

func TestSimulator_Close(t *testing.T) {
	sim := newTestSimulator(time.Minute, time.Minute)
	rec := &recorder{}

	require.NoError(t, sim.Speak("hello", rec.finished))
	sim.Close()

	require.Len(t, rec.results(), 1)
	require.ErrorIs(t, rec.results()[0], service.ErrSpeechCancelled)
	assert.ErrorIs(t, sim.Speak("again", rec.finished), ErrClosed)
}
