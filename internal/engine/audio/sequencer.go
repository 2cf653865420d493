// Package audio serializes stop narrations so exactly one plays at a time.
package audio

import (
	"log/slog"

	"audiotour/internal/domain/entity"
	"audiotour/internal/domain/service"
	"audiotour/internal/errors"

	"github.com/google/uuid"
)

// FinishedFunc receives engine completions tagged with the utterance token they belong to.
type FinishedFunc func(token uint64, err error)

// Sequencer is an order-preserving, deduplicated narration queue.
//
// It is not safe for concurrent use. Engine completions must be routed back to
// PlaybackFinished by the owner, which serializes them with the other calls.
type Sequencer struct {
	engine     service.SpeechEngine
	onFinished FinishedFunc
	logger     *slog.Logger

	queue     []entity.AudioQueueItem
	processed map[string]struct{}
	current   *entity.AudioQueueItem
	isPlaying bool
	isPaused  bool

	// token identifies the in-flight utterance; completions carrying any other
	// token belong to cancelled utterances and are discarded.
	token     uint64
	nextToken uint64
}

// NewSequencer creates an idle sequencer.
func NewSequencer(engine service.SpeechEngine, onFinished FinishedFunc, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Sequencer{
		engine:     engine,
		onFinished: onFinished,
		logger:     logger,
		processed:  make(map[string]struct{}),
	}
}

// Enqueue adds a narration for a stop once per session. It returns false when the
// stop was already processed. Playback starts immediately when idle.
func (s *Sequencer) Enqueue(stopID, name, text string, order int) bool {
	if _, ok := s.processed[stopID]; ok {
		return false
	}
	s.processed[stopID] = struct{}{}

	item := entity.AudioQueueItem{
		ID:       uuid.NewString(),
		StopID:   stopID,
		StopName: name,
		Text:     text,
		Order:    order,
	}
	s.insert(item)

	if s.current == nil {
		s.advance()
	}

	return true
}

// PlaybackFinished handles an engine completion. Completions for cancelled or
// superseded utterances are ignored and return false.
func (s *Sequencer) PlaybackFinished(token uint64, err error) bool {
	if token == 0 || token != s.token {
		s.logger.Debug("Discarding stale playback completion",
			slog.Uint64("token", token),
			slog.Uint64("current_token", s.token),
		)

		return false
	}

	if err != nil {
		s.logNarrationFailure(err)
	}

	s.clearCurrent()
	s.advance()

	return true
}

// SkipToNext cancels the current narration and plays the next queued one.
// The skipped item is dropped.
func (s *Sequencer) SkipToNext() {
	s.cancelCurrent()
	s.advance()
}

// Pause pauses the current narration. It is a no-op unless playing.
func (s *Sequencer) Pause() bool {
	if !s.isPlaying || s.isPaused {
		return false
	}

	if err := s.engine.Pause(); err != nil {
		s.logger.Warn("Speech engine failed to pause", slog.Any("error", err))

		return false
	}

	s.isPlaying = false
	s.isPaused = true

	return true
}

// Resume resumes a paused narration. It is a no-op unless paused.
func (s *Sequencer) Resume() bool {
	if !s.isPaused {
		return false
	}

	if err := s.engine.Resume(); err != nil {
		s.logger.Warn("Speech engine failed to resume", slog.Any("error", err))

		return false
	}

	s.isPlaying = true
	s.isPaused = false

	return true
}

// Stop cancels the current narration and keeps the upcoming queue.
func (s *Sequencer) Stop() {
	s.cancelCurrent()
}

// StopAndClear cancels playback and forgets the queue and processed stops.
func (s *Sequencer) StopAndClear() {
	s.cancelCurrent()
	s.queue = nil
	s.processed = make(map[string]struct{})
}

// IsProcessed reports whether the stop was already enqueued this session.
func (s *Sequencer) IsProcessed(stopID string) bool {
	_, ok := s.processed[stopID]

	return ok
}

// Status returns a copy of the queue state.
func (s *Sequencer) Status() entity.PlaybackStatus {
	status := entity.PlaybackStatus{
		Queue:     make([]entity.AudioQueueItem, len(s.queue)),
		IsPlaying: s.isPlaying,
		IsPaused:  s.isPaused,
	}
	copy(status.Queue, s.queue)

	if s.current != nil {
		current := *s.current
		status.Current = &current
	}

	return status
}

// insert places item after every queued item with an order <= item.Order.
func (s *Sequencer) insert(item entity.AudioQueueItem) {
	idx := len(s.queue)
	for i, queued := range s.queue {
		if queued.Order > item.Order {
			idx = i

			break
		}
	}

	s.queue = append(s.queue, entity.AudioQueueItem{})
	copy(s.queue[idx+1:], s.queue[idx:])
	s.queue[idx] = item
}

// advance starts the head of the queue. Items the engine refuses to start are
// dropped so a broken engine cannot stall the tour.
func (s *Sequencer) advance() {
	for len(s.queue) > 0 {
		item := s.queue[0]
		s.queue = s.queue[1:]

		s.nextToken++
		token := s.nextToken
		s.current = &item
		s.token = token
		s.isPlaying = true
		s.isPaused = false

		err := s.engine.Speak(item.Text, func(err error) {
			if s.onFinished != nil {
				s.onFinished(token, err)
			}
		})
		if err == nil {
			return
		}

		s.logNarrationFailure(errors.Wrapf(err, "start narration for stop %s", item.StopID))
		s.clearCurrent()
	}
}

func (s *Sequencer) cancelCurrent() {
	if s.current == nil {
		return
	}

	// Invalidate the token first so the cancellation callback is discarded.
	s.token = 0
	s.engine.StopImmediately()
	s.clearCurrent()
}

func (s *Sequencer) clearCurrent() {
	s.current = nil
	s.token = 0
	s.isPlaying = false
	s.isPaused = false
}

func (s *Sequencer) logNarrationFailure(err error) {
	attrs := []any{slog.Any("error", err)}
	if s.current != nil {
		attrs = append(attrs, slog.String("stop_id", s.current.StopID))
	}

	if errors.Is(err, service.ErrSpeechCancelled) {
		s.logger.Debug("Narration cancelled", attrs...)

		return
	}

	s.logger.Warn("Narration failed, advancing queue", attrs...)
}
