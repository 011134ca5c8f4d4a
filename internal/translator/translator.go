package translator

import (
	"context"
	"errors"
)

// Translator turns English input into a Chinese translation via a single
// outbound request
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

var (
	// ErrEmptyInput is returned for empty input, before any request is made
	ErrEmptyInput = errors.New("empty input")

	// ErrNetwork covers transport failures and non-2xx responses
	ErrNetwork = errors.New("translation request failed")

	// ErrMalformedResponse covers bodies that cannot be parsed or that
	// lack the translated text
	ErrMalformedResponse = errors.New("malformed translation response")
)

// Result delivers the outcome of an asynchronous translation
type Result struct {
	Text string
	Err  error
}

// TranslateAsync runs the translation on its own goroutine and delivers
// the outcome on a buffered channel. The caller decides which goroutine
// consumes the result; nothing here blocks state-owning code.
func TranslateAsync(ctx context.Context, t Translator, text string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		translated, err := t.Translate(ctx, text)
		ch <- Result{Text: translated, Err: err}
	}()
	return ch
}
