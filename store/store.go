// Package store persists the saved filter preferences.
//
// A Store holds one PreferenceDocument. Load never fails outward: a missing
// document is created empty, an unreadable one is logged, counted and
// answered with the empty document. Save and Clear replace the whole
// document and report write failures wrapped in ErrStorage.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"TaskFilterService/models"
)

// ErrStorage wraps every failure to write the preference document.
var ErrStorage = errors.New("preference storage failure")

// Store is the preference persistence used by the HTTP layer.
type Store interface {
	// Init creates the empty document if none exists yet.
	Init(ctx context.Context) error
	// Load returns the current document, or the empty one if it cannot be read.
	Load(ctx context.Context) models.PreferenceDocument
	// Save stamps entry with the current time and makes it the only saved preference.
	Save(ctx context.Context, entry models.Preference) error
	// Clear empties the saved preferences.
	Clear(ctx context.Context) error
}

// Option configures the shared behaviour of every store.
type Option func(*base)

// WithLogger sets the logger used for load fallbacks and write failures.
func WithLogger(log logrus.FieldLogger) Option {
	return func(b *base) { b.log = log }
}

// WithFallbackCounter sets the counter incremented on every load fallback.
func WithFallbackCounter(c prometheus.Counter) Option {
	return func(b *base) { b.fallbacks = c }
}

// WithClock sets the clock used to stamp saved preferences.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

type base struct {
	log       logrus.FieldLogger
	fallbacks prometheus.Counter
	now       func() time.Time
	backend   string
}

func newBase(backend string, opts []Option) base {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	b := base{log: discard, now: time.Now, backend: backend}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// stamp returns a copy of entry carrying the server timestamp.
func (b *base) stamp(entry models.Preference) models.Preference {
	stamped := entry.Clone()
	if stamped == nil {
		stamped = models.Preference{}
	}
	stamped[models.TimestampKey] = b.now().Format(models.TimestampLayout)
	return stamped
}

// fallback records a failed load and returns the empty document.
func (b *base) fallback(err error) models.PreferenceDocument {
	if b.fallbacks != nil {
		b.fallbacks.Inc()
	}
	b.log.WithFields(logrus.Fields{
		"preference operation": "load preferences",
		"backend":              b.backend,
	}).Error("Error loading preferences: " + err.Error())
	return models.EmptyDocument()
}

// writeFailed logs a failed write and wraps it in ErrStorage.
func (b *base) writeFailed(operation string, err error) error {
	b.log.WithFields(logrus.Fields{
		"preference operation": operation,
		"backend":              b.backend,
	}).Error(err.Error())
	return fmt.Errorf("%w: %s: %v", ErrStorage, operation, err)
}

func (b *base) wrote(operation string, doc models.PreferenceDocument) {
	b.log.WithFields(logrus.Fields{
		"preference operation": operation,
		"backend":              b.backend,
		"saved preferences":    len(doc.SavedPreferences),
	}).Info("Saved preferences")
}
