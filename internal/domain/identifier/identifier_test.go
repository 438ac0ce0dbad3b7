package identifier

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCounter struct {
	n   int64
	err error
}

func (c staticCounter) CountAll(context.Context) (int64, error) { return c.n, c.err }

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func firstLetter(int) int { return 0 }

func TestNextShipmentID(t *testing.T) {
	now := time.Date(2025, time.July, 14, 10, 0, 0, 0, time.UTC)
	g := NewGeneratorWith(NewCountSequence(staticCounter{n: 2}), fixedClock(now), firstLetter)

	id, err := g.NextShipmentID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SHP-2025-003", id)
}

func TestNextShipmentID_UsesCurrentYear(t *testing.T) {
	g := NewGenerator(NewCountSequence(staticCounter{n: 2}))

	id, err := g.NextShipmentID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ShipmentID(3, time.Now()), id)
}

func TestNextBatchNo(t *testing.T) {
	now := time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC)
	g := NewGeneratorWith(NewCountSequence(staticCounter{n: 5}), fixedClock(now), firstLetter)

	batch, err := g.NextBatchNo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BATCH-032025-006", batch)
}

func TestSequenceWiderThanPadding(t *testing.T) {
	now := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "SHP-2026-1234", ShipmentID(1234, now))
	assert.Equal(t, "BATCH-122026-1234", BatchNo(1234, now))
}

func TestNextTrackingNumber(t *testing.T) {
	now := time.UnixMilli(1741000123456)
	g := NewGeneratorWith(nil, fixedClock(now), firstLetter)

	assert.Equal(t, "TRK123456AAAAAA", g.NextTrackingNumber())
}

func TestTrackingNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^TRK\d{6}[A-Z0-9]{6}$`)
	g := NewGenerator(nil)
	for i := 0; i < 50; i++ {
		tn := g.NextTrackingNumber()
		assert.Regexp(t, re, tn)
	}
}

func TestTrackingNumber_PadsShortSuffix(t *testing.T) {
	now := time.UnixMilli(1741000000042)
	last := func(n int) int { return n - 1 }

	assert.Equal(t, "TRK000042999999", TrackingNumber(now, last))
}

func TestShipmentIdentifiers_SingleDraw(t *testing.T) {
	now := time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC)
	g := NewGeneratorWith(NewCountSequence(staticCounter{n: 41}), fixedClock(now), firstLetter)

	ids, err := g.ShipmentIdentifiers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SHP-2025-042", ids.ShipmentID)
	assert.Equal(t, "BATCH-032025-042", ids.BatchNo)
	assert.Regexp(t, `^TRK\d{6}AAAAAA$`, ids.TrackingNumber)
}

func TestCountSequence_PropagatesError(t *testing.T) {
	g := NewGeneratorWith(NewCountSequence(staticCounter{err: errors.New("db")}), time.Now, firstLetter)

	_, err := g.NextShipmentID(context.Background())
	assert.EqualError(t, err, "db")

	_, err = g.ShipmentIdentifiers(context.Background())
	assert.EqualError(t, err, "db")
}
