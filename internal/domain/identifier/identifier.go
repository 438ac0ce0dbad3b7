// Package identifier builds the human readable shipment identifiers.
//
// Formats:
//   - shipmentId:     SHP-<year>-<seq3>
//   - batchNo:        BATCH-<MM><YYYY>-<seq3>
//   - trackingNumber: TRK<last 6 digits of epoch ms><6 uppercase alphanumerics>
//
// Identifiers are generated once, before the first persist of a shipment.
package identifier

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Sequence hands out the next shipment sequence number.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// Counter counts every stored shipment, active or not.
type Counter interface {
	CountAll(ctx context.Context) (int64, error)
}

// CountSequence derives the next sequence number from the current record count.
//
// Count-then-format is not atomic: two concurrent creations can observe the
// same count and produce the same identifiers. Use the atomic counter
// sequence when that matters.
type CountSequence struct {
	counter Counter
}

func NewCountSequence(counter Counter) *CountSequence {
	return &CountSequence{counter: counter}
}

func (s *CountSequence) Next(ctx context.Context) (int64, error) {
	n, err := s.counter.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// ShipmentIdentifiers is the set of identifiers assigned at creation.
type ShipmentIdentifiers struct {
	ShipmentID     string
	BatchNo        string
	TrackingNumber string
}

// Generator combines a Sequence with a clock and a random source.
type Generator struct {
	seq  Sequence
	now  func() time.Time
	intn func(n int) int
}

func NewGenerator(seq Sequence) *Generator {
	return &Generator{seq: seq, now: time.Now, intn: rand.Intn}
}

// NewGeneratorWith allows injecting the clock and random source.
func NewGeneratorWith(seq Sequence, now func() time.Time, intn func(n int) int) *Generator {
	return &Generator{seq: seq, now: now, intn: intn}
}

func (g *Generator) NextShipmentID(ctx context.Context) (string, error) {
	n, err := g.seq.Next(ctx)
	if err != nil {
		return "", err
	}
	return ShipmentID(n, g.now()), nil
}

func (g *Generator) NextBatchNo(ctx context.Context) (string, error) {
	n, err := g.seq.Next(ctx)
	if err != nil {
		return "", err
	}
	return BatchNo(n, g.now()), nil
}

func (g *Generator) NextTrackingNumber() string {
	return TrackingNumber(g.now(), g.intn)
}

// ShipmentIdentifiers draws one sequence number and formats all three
// identifiers from it.
func (g *Generator) ShipmentIdentifiers(ctx context.Context) (ShipmentIdentifiers, error) {
	n, err := g.seq.Next(ctx)
	if err != nil {
		return ShipmentIdentifiers{}, err
	}
	now := g.now()
	return ShipmentIdentifiers{
		ShipmentID:     ShipmentID(n, now),
		BatchNo:        BatchNo(n, now),
		TrackingNumber: TrackingNumber(now, g.intn),
	}, nil
}

func ShipmentID(seq int64, now time.Time) string {
	return fmt.Sprintf("SHP-%d-%03d", now.Year(), seq)
}

func BatchNo(seq int64, now time.Time) string {
	return fmt.Sprintf("BATCH-%02d%04d-%03d", int(now.Month()), now.Year(), seq)
}

func TrackingNumber(now time.Time, intn func(n int) int) string {
	suffix := now.UnixMilli() % 1_000_000
	b := make([]byte, 6)
	for i := range b {
		b[i] = trackingAlphabet[intn(len(trackingAlphabet))]
	}
	return fmt.Sprintf("TRK%06d%s", suffix, b)
}
