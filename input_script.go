package demo2d

import (
	"fmt"
	"strings"
	"time"

	"github.com/bocanonline/demo2d/scene"
)

// holdEpsilon absorbs float drift when frame times land exactly on a hold boundary.
const holdEpsilon = 1e-6

// Hold keeps Key down for frames whose elapsed time falls in (Start, Start+Duration].
type Hold struct {
	Key      scene.Key
	Start    time.Duration
	Duration time.Duration
}

// ParseHold reads "key=duration" or "key@start=duration", e.g. "move-up=1s" or
// "rotate-left@500ms=2s".
func ParseHold(s string) (Hold, error) {
	name, dur, ok := strings.Cut(s, "=")
	if !ok {
		return Hold{}, fmt.Errorf("hold %q: want key=duration", s)
	}
	var start time.Duration
	if keyName, at, found := strings.Cut(name, "@"); found {
		name = keyName
		d, err := time.ParseDuration(at)
		if err != nil {
			return Hold{}, fmt.Errorf("hold %q: start: %w", s, err)
		}
		start = d
	}

	key, err := scene.ParseKey(name)
	if err != nil {
		return Hold{}, fmt.Errorf("hold %q: %w", s, err)
	}
	d, err := time.ParseDuration(dur)
	if err != nil {
		return Hold{}, fmt.Errorf("hold %q: duration: %w", s, err)
	}
	if d < 0 || start < 0 {
		return Hold{}, fmt.Errorf("hold %q: negative time", s)
	}
	return Hold{Key: key, Start: start, Duration: d}, nil
}

func (h Hold) active(elapsed float64) bool {
	start := h.Start.Seconds()
	end := start + h.Duration.Seconds()
	return elapsed > start+holdEpsilon && elapsed <= end+holdEpsilon
}

// ScriptedInput replays key holds against the frame clock instead of a keyboard.
type ScriptedInput struct {
	Holds []Hold
}

func (s *ScriptedInput) Poll(elapsed float32) (scene.KeySet, bool) {
	var keys scene.KeySet
	for _, h := range s.Holds {
		if h.active(float64(elapsed)) {
			keys.Set(h.Key, true)
		}
	}
	return keys, false
}

// End is the latest release time over all holds.
func (s *ScriptedInput) End() time.Duration {
	var end time.Duration
	for _, h := range s.Holds {
		end = max(end, h.Start+h.Duration)
	}
	return end
}
