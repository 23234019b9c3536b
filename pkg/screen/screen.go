// Package screen holds the client-side state of one back-office screen: the
// cascading period selection, the last good data and the last error.
package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// ErrStale is returned by a load whose selection was superseded while it
// was in flight. Its result is discarded.
var ErrStale = errors.New("stale response discarded")

// Selection is a cascading year/month/day filter. Changing a level clears
// the levels below it.
type Selection struct {
	period models.Period
}

// SetYear selects year and clears month and day.
func (s *Selection) SetYear(year int) {
	s.period = models.Period{Year: year}
}

// SetMonth selects month and clears day.
func (s *Selection) SetMonth(month int) {
	s.period.Month = month
	s.period.Day = 0
}

// SetDay selects day.
func (s *Selection) SetDay(day int) {
	s.period.Day = day
}

// Period returns the current selection.
func (s Selection) Period() models.Period {
	return s.period
}

// Loader fetches the data of a screen for a period.
type Loader[T any] func(ctx context.Context, p models.Period) (T, error)

// Screen owns one fetched copy of T. Every load is stamped with a
// generation; only the response of the newest load is applied. A failed
// load keeps the previous data and records the error message.
type Screen[T any] struct {
	mu     sync.Mutex
	load   Loader[T]
	sel    Selection
	gen    uint64
	data   T
	loaded bool
	err    string
}

// New creates a screen with an initial selection. Nothing is loaded until
// Load or one of the Select methods is called.
func New[T any](load Loader[T], initial models.Period) *Screen[T] {
	return &Screen[T]{load: load, sel: Selection{period: initial}}
}

// Load fetches the data for the current selection.
func (s *Screen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen, p := s.gen, s.sel.Period()
	s.mu.Unlock()

	v, err := s.load(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return ErrStale
	}
	if err != nil {
		s.err = err.Error()
		return err
	}
	s.data, s.loaded, s.err = v, true, ""
	return nil
}

// SelectYear selects year, clears month and day, and reloads once.
func (s *Screen[T]) SelectYear(ctx context.Context, year int) error {
	s.mu.Lock()
	s.sel.SetYear(year)
	s.mu.Unlock()
	return s.Load(ctx)
}

// SelectMonth selects month, clears day, and reloads once.
func (s *Screen[T]) SelectMonth(ctx context.Context, month int) error {
	s.mu.Lock()
	s.sel.SetMonth(month)
	s.mu.Unlock()
	return s.Load(ctx)
}

// SelectDay selects day and reloads once.
func (s *Screen[T]) SelectDay(ctx context.Context, day int) error {
	s.mu.Lock()
	s.sel.SetDay(day)
	s.mu.Unlock()
	return s.Load(ctx)
}

// Period returns the current selection.
func (s *Screen[T]) Period() models.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Period()
}

// Data returns the last successfully loaded data and whether any load has
// succeeded yet.
func (s *Screen[T]) Data() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.loaded
}

// Err returns the message of the last failed load or mutation, or "".
func (s *Screen[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Update applies fn to the held data, as after a successful mutation.
func (s *Screen[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = fn(s.data)
}

// Fail records the message of a failed mutation without touching the data.
func (s *Screen[T]) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err.Error()
}
