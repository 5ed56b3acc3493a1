// Package generator produces synthetic communication records, either
// as a continuous background loop (calls) or a one-shot batch of
// two-way conversations (email, SMS).
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/haldor/keepintouch/internal/models"
	"github.com/haldor/keepintouch/internal/storage"
)

// Defaults for the call loop's sleep interval.
const (
	DefaultMinInterval = 1 * time.Second
	DefaultMaxInterval = 10 * time.Second
)

// Generator produces synthetic records for one service.
type Generator struct {
	store  storage.Store
	schema models.Schema
	logger *slog.Logger

	rng         *rand.Rand
	now         func() time.Time
	minInterval time.Duration
	maxInterval time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock (for tests).
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand overrides the random source (for tests).
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithInterval overrides the call loop's sleep bounds.
func WithInterval(min, max time.Duration) Option {
	return func(g *Generator) {
		g.minInterval = min
		g.maxInterval = max
	}
}

// New creates a Generator writing to store under the given schema.
func New(store storage.Store, schema models.Schema, logger *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		store:  store,
		schema: schema,
		logger: logger,
		rng: rand.New(rand.NewPCG(
			uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32)),
		now:         time.Now,
		minInterval: DefaultMinInterval,
		maxInterval: DefaultMaxInterval,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// randomPast returns a moment within roughly the past week. The day,
// hour, minute, and second offsets are drawn independently, so the
// distribution is not uniform over the 7-day span.
func (g *Generator) randomPast(now time.Time) time.Time {
	return now.Add(-(time.Duration(g.rng.IntN(8))*24*time.Hour +
		time.Duration(g.rng.IntN(24))*time.Hour +
		time.Duration(g.rng.IntN(60))*time.Minute +
		time.Duration(g.rng.IntN(60))*time.Second))
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

// CallRecord builds one random call-log record.
func (g *Generator) CallRecord() models.Record {
	return models.Record{
		"datetime":         g.randomPast(g.now()).Format(models.TimeLayout),
		"sender":           g.pick(CallSenders),
		g.schema.TypeField: g.pick(g.schema.TypeValues),
	}
}

// Run appends one random call record per iteration, sleeping a random
// whole number of seconds between the configured bounds. It returns
// when ctx is cancelled; cancellation is honored at the iteration
// boundary.
func (g *Generator) Run(ctx context.Context) error {
	g.logger.Info("generator: started",
		slog.String("service", string(g.schema.Kind)))
	for {
		if _, err := g.store.Append(g.CallRecord()); err != nil {
			g.logger.Warn("generator: append failed",
				slog.String("service", string(g.schema.Kind)),
				slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			g.logger.Info("generator: stopped",
				slog.String("service", string(g.schema.Kind)))
			return nil
		case <-time.After(g.sleepInterval()):
		}
	}
}

func (g *Generator) sleepInterval() time.Duration {
	minS := int(g.minInterval / time.Second)
	maxS := int(g.maxInterval / time.Second)
	if maxS <= minS {
		return g.minInterval
	}
	return time.Duration(minS+g.rng.IntN(maxS-minS+1)) * time.Second
}

// Seed replaces the store contents with count two-way conversations:
// a received record followed by a reply from the local user up to an
// hour later. Run once at startup for email and SMS.
func (g *Generator) Seed(count int) error {
	now := g.now()
	recs := make([]models.Record, 0, 2*count)
	for i := 0; i < count; i++ {
		first, reply := g.conversation(now)
		recs = append(recs, first, reply)
	}
	if err := g.store.Replace(recs); err != nil {
		return fmt.Errorf("generator: seed: %w", err)
	}
	g.logger.Info("generator: seeded",
		slog.String("service", string(g.schema.Kind)),
		slog.Int("records", len(recs)))
	return nil
}

func (g *Generator) conversation(now time.Time) (models.Record, models.Record) {
	firstAt := g.randomPast(now)
	replyAt := firstAt.Add(
		time.Duration(1+g.rng.IntN(60))*time.Minute +
			time.Duration(g.rng.IntN(60))*time.Second)

	received, sent := g.schema.TypeValues[0], g.schema.TypeValues[1]

	first := models.Record{
		"datetime":         firstAt.Format(models.TimeLayout),
		"sender":           g.pick(Names),
		g.schema.TypeField: received,
	}
	reply := models.Record{
		"datetime":         replyAt.Format(models.TimeLayout),
		"sender":           models.LocalSender,
		g.schema.TypeField: sent,
	}

	switch g.schema.Kind {
	case models.KindEmail:
		first["subject"] = g.pick(EmailSubjects)
		first["body"] = g.pick(ReceivedBodies)
		first["attachments"] = []string{}
		reply["subject"] = "Re: " + g.pick(EmailSubjects)
		reply["body"] = g.pick(SentBodies)
		reply["attachments"] = []string{}
	case models.KindSMS:
		first["content"] = g.pick(ReceivedTexts)
		reply["content"] = g.pick(SentTexts)
	}
	return first, reply
}
