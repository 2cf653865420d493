package service

import "audiotour/internal/errors"

// ErrSpeechCancelled is reported to the finished callback when an utterance is stopped.
var ErrSpeechCancelled = errors.New("speech cancelled")

// SpeechEngine is the minimal narration capability the audio sequencer depends on.
type SpeechEngine interface {
	// Speak starts narrating text and returns without waiting for it to finish.
	// finished is called exactly once, with nil on completion, ErrSpeechCancelled
	// after StopImmediately, or the engine's failure.
	Speak(text string, finished func(err error)) error

	// Pause suspends the current utterance.
	Pause() error

	// Resume continues a paused utterance.
	Resume() error

	// StopImmediately cancels the current utterance, if any.
	StopImmediately()
}
