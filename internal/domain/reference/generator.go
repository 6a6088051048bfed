package reference

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"cbl-crm/go_backend/internal/clock"
)

// Counter names used for quotation and invoice numbering.
const (
	CounterQuotation = "quotation"
	CounterInvoice   = "invoice"
)

var ErrNoCounterStore = errors.New("no counter store configured")

// CounterStore hands out the next value of a named counter. Implementations
// must fetch and increment in one atomic round trip.
type CounterStore interface {
	NextValue(ctx context.Context, name string) (int64, error)
}

type Source string

const (
	SourceCounter  Source = "counter"
	SourceFallback Source = "fallback"
)

type Reference struct {
	Number string
	Source Source
}

func (r Reference) String() string { return r.Number }

func (r Reference) Degraded() bool { return r.Source == SourceFallback }

// counterResult is the outcome of the single counter attempt: either a
// value or the reason it could not be used.
type counterResult struct {
	value int64
	err   error
}

func (r counterResult) ok() bool { return r.err == nil }

type Generator struct {
	store  CounterStore
	clock  clock.Clock
	random func() int
	log    *zap.Logger
}

type Option func(*Generator)

func WithClock(c clock.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithRandom replaces the source of the 3-digit fallback disambiguator.
func WithRandom(fn func() int) Option {
	return func(g *Generator) { g.random = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator builds a generator backed by store. A nil store is allowed and
// sends every call down the fallback path.
func NewGenerator(store CounterStore, opts ...Option) *Generator {
	g := &Generator{
		store:  store,
		clock:  clock.System{},
		random: func() int { return rand.IntN(1000) },
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the reference string for a new document.
func (g *Generator) Generate(ctx context.Context, counterName, companyShortCode string) string {
	return g.Next(ctx, counterName, companyShortCode).Number
}

// Next tries the counter store once and formats from its value; on any
// failure it falls back to a time derived number. It never fails.
func (g *Generator) Next(ctx context.Context, counterName, companyShortCode string) Reference {
	prefix := ResolvePrefix(companyShortCode)
	now := g.clock.Now()

	res := g.attemptCounter(ctx, counterName)
	if res.ok() {
		return Reference{
			Number: FormatFromCounter(prefix, now, res.value),
			Source: SourceCounter,
		}
	}

	ref := Reference{
		Number: FormatFallback(prefix, now, g.random()),
		Source: SourceFallback,
	}
	g.log.Warn("reference counter unavailable, using fallback",
		zap.String("counter", counterName),
		zap.String("reference", ref.Number),
		zap.Error(res.err),
	)
	return ref
}

func (g *Generator) attemptCounter(ctx context.Context, name string) (res counterResult) {
	if g.store == nil {
		return counterResult{err: ErrNoCounterStore}
	}
	defer func() {
		if p := recover(); p != nil {
			res = counterResult{err: fmt.Errorf("counter store panic: %v", p)}
		}
	}()

	v, err := g.store.NextValue(ctx, name)
	if err != nil {
		return counterResult{err: fmt.Errorf("next value of %q: %w", name, err)}
	}
	if v <= 0 {
		return counterResult{err: fmt.Errorf("counter %q returned non-positive value %d", name, v)}
	}
	return counterResult{value: v}
}
