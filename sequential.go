package guuid

import (
	"crypto/rand"
	"io"
	"time"
)

const (
	// ticksPerSecond is the number of 100 ns ticks in a second
	ticksPerSecond = int64(time.Second / 100)

	// tickShift splits the tick count: the high 48 bits fill the six leading
	// priority bytes, the low tickShift bits follow in the next free bits.
	// Together they span 1970 to year 9276 at 100 ns resolution.
	tickShift = 13

	// maxTicks is the first tick count that no longer fits the time field
	maxTicks = int64(1) << (48 + tickShift)

	timeBytes = 6
)

var (
	// MinSequentialTime is the earliest instant the sequential generator accepts.
	MinSequentialTime = time.Unix(0, 0).UTC()

	// MaxSequentialTime is the latest instant the sequential generator accepts.
	MaxSequentialTime = time.Unix((maxTicks-1)/ticksPerSecond, ((maxTicks-1)%ticksPerSecond)*100).UTC()
)

// stampedBits marks the version and variant bits. They hold the same value in
// every sequential UUID, so they carry no time.
var stampedBits = [16]byte{versionByte: 0xf0, variantByte: 0xc0}

// Clock supplies the current instant to a Generator.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Generator creates UUIDs. It holds no mutable state, so one Generator may be
// shared by any number of goroutines.
type Generator struct {
	clock      Clock
	randReader io.Reader
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock replaces the time source used for sequential UUIDs.
func WithClock(c Clock) GeneratorOption {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithRandReader replaces the random source.
// This is primarily useful for testing with deterministic random sources.
func WithRandReader(r io.Reader) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.randReader = r
		}
	}
}

// NewGenerator creates a generator reading SystemClock and crypto/rand.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		clock:      SystemClock,
		randReader: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSequential generates a time-ordered UUID laid out for comparator c.
// A UUID for a later instant never sorts before one for an earlier instant
// under c. UUIDs for the same 100 ns tick are ordered at random.
func (g *Generator) NewSequential(c Comparator) (UUID, error) {
	return g.NewSequentialAt(g.clock.Now(), c)
}

// NewSequentialAt generates a sequential UUID for the instant t.
// It returns a *RangeError if t is before MinSequentialTime or after
// MaxSequentialTime.
func (g *Generator) NewSequentialAt(t time.Time, c Comparator) (UUID, error) {
	var uuid UUID

	ticks, err := ticksOf(t)
	if err != nil {
		return uuid, err
	}

	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, err
	}

	// Write the time field big-endian into the six most significant
	// positions of the comparator's priority order.
	step := uint64(ticks) >> tickShift
	prio := c.Priority()
	for i := 0; i < timeBytes; i++ {
		uuid[prio[i]] = byte(step >> (8 * (timeBytes - 1 - i)))
	}

	uuid.stamp(VersionSequential)

	bit := tickShift - 1
	lowTickBits(prio, func(i int, mask byte) {
		if uint64(ticks)>>bit&1 == 1 {
			uuid[i] |= mask
		} else {
			uuid[i] &^= mask
		}
		bit--
	})
	return uuid, nil
}

// lowTickBits visits the tickShift bit positions that hold the low tick bits,
// most significant first: the unstamped bits of the bytes ranked after the
// time field.
func lowTickBits(prio [16]int, visit func(i int, mask byte)) {
	n := 0
	for r := timeBytes; r < len(prio) && n < tickShift; r++ {
		i := prio[r]
		for b := 7; b >= 0 && n < tickShift; b-- {
			mask := byte(1) << b
			if stampedBits[i]&mask != 0 {
				continue
			}
			visit(i, mask)
			n++
		}
	}
}

// ticksOf converts t to 100 ns ticks since the Unix epoch, rejecting instants
// outside [MinSequentialTime, MaxSequentialTime].
func ticksOf(t time.Time) (int64, error) {
	sec := t.Unix()
	if sec < 0 || sec > (maxTicks-1)/ticksPerSecond {
		return 0, &RangeError{Time: t}
	}
	ticks := sec*ticksPerSecond + int64(t.Nanosecond())/100
	if ticks >= maxTicks {
		return 0, &RangeError{Time: t}
	}
	return ticks, nil
}

// Time extracts the instant embedded in a sequential UUID that was laid out
// for comparator c. It reports false for UUIDs of any other version.
// The result is truncated to 100 ns.
func (u UUID) Time(c Comparator) (time.Time, bool) {
	if u.Version() != VersionSequential {
		return time.Time{}, false
	}
	var step, low uint64
	prio := c.Priority()
	for i := 0; i < timeBytes; i++ {
		step = step<<8 | uint64(u[prio[i]])
	}
	lowTickBits(prio, func(i int, mask byte) {
		low <<= 1
		if u[i]&mask != 0 {
			low |= 1
		}
	})
	ticks := int64(step<<tickShift | low)
	return time.Unix(ticks/ticksPerSecond, (ticks%ticksPerSecond)*100).UTC(), true
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guuid.Must(guuid.NewSequential(guuid.ComparatorSQLServer))
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// NewSequential generates a sequential UUID for comparator c using the
// default generator.
func NewSequential(c Comparator) (UUID, error) {
	return defaultGenerator.NewSequential(c)
}
