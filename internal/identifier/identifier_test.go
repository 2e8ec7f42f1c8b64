package identifier

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var numberPattern = regexp.MustCompile(`^[A-Z-]+-\d{8}-[A-Z0-9]{5}$`)

func TestGenerate_Format(t *testing.T) {
	g := NewRandom()

	for _, prefix := range []string{"QD-BK", "QD-EV", "QD-MB"} {
		number := g.Generate(prefix)
		assert.Regexp(t, numberPattern, number)
	}
}

func TestGenerate_DateSegmentIsGenerationDate(t *testing.T) {
	g := &Random{
		now:  func() time.Time { return time.Date(2025, 4, 13, 23, 59, 0, 0, time.UTC) },
		intn: func(n int) int { return 0 },
	}

	assert.Equal(t, "QD-BK-20250413-00000", g.Generate("QD-BK"))
}

func TestGenerate_RandomSegmentVaries(t *testing.T) {
	g := NewRandom()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[g.Generate("QD-EV")] = true
	}

	// No uniqueness guarantee exists, but 50 collisions in a 36^5 space
	// would indicate a broken random source.
	assert.Greater(t, len(seen), 1)
}

func TestGenerate_SegmentAlphabet(t *testing.T) {
	g := &Random{
		now:  func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) },
		intn: func(n int) int { return n - 1 },
	}

	assert.Equal(t, "QD-MB-20250102-ZZZZZ", g.Generate("QD-MB"))
}
