// Package identifier generates human-readable receipt numbers
package identifier

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	base36        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomSegment = 5
)

// Generator produces receipt numbers of the form
// {prefix}-{YYYYMMDD}-{5 uppercase base36 chars}, e.g. QD-BK-20250413-7K2XQ.
// The date segment is the generation date, not the transaction date.
type Generator interface {
	Generate(prefix string) string
}

// Random is the default Generator. The random segment comes from a
// non-cryptographic source and carries no collision check: two numbers
// generated on the same day may coincide.
type Random struct {
	now  func() time.Time
	intn func(n int) int
}

// NewRandom creates a Generator backed by the wall clock and math/rand
func NewRandom() *Random {
	return &Random{
		now:  time.Now,
		intn: rand.IntN,
	}
}

// Generate produces a new receipt number with the given prefix
func (g *Random) Generate(prefix string) string {
	var b strings.Builder
	for i := 0; i < randomSegment; i++ {
		b.WriteByte(base36[g.intn(len(base36))])
	}

	return fmt.Sprintf("%s-%s-%s", prefix, g.now().Format("20060102"), b.String())
}
