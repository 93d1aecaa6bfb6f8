package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/ratelimit"
)

// Effect rates, in runes (typewriter) or steps (progress) per second.
const (
	typewriterRate = 250
	progressRate   = 20
	progressWidth  = 30
)

// TypewriterBucket paces Typewriter output at its usual dramatic rate.
func TypewriterBucket() *ratelimit.Bucket {
	return ratelimit.NewBucketWithRate(typewriterRate, 1)
}

// ProgressBucket paces ProgressBar updates.
func ProgressBucket() *ratelimit.Bucket {
	return ratelimit.NewBucketWithRate(progressRate, 1)
}

// Typewriter writes text to w one rune at a time, paced by bucket.
// A nil bucket writes at full speed, which tests rely on.
func (t *Theme) Typewriter(w io.Writer, bucket *ratelimit.Bucket, style Style, text string) {
	for _, r := range text {
		if bucket != nil {
			bucket.Wait(1)
		}
		t.Printf(w, style, "%c", r)
	}
	fmt.Fprintln(w)
}

// ProgressBar renders an animated bar with the given number of steps.
func (t *Theme) ProgressBar(w io.Writer, bucket *ratelimit.Bucket, label string, steps int) {
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		if bucket != nil {
			bucket.Wait(1)
		}
		pct := i * 100 / steps
		filled := progressWidth * pct / 100
		bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled) + "]"
		t.Printf(w, Info, "\r%s %s %d%%", label, bar, pct)
	}
	fmt.Fprintln(w)
}
