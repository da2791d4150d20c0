package progress

// Levels are the celebratory thresholds, in ascending order.
var Levels = []int{25, 50, 75, 100}

// Thresholds tracks the last celebrated level for a session so each level
// fires at most once. The watermark is in-memory state: on resume it is
// re-seeded from the recomputed score so old celebrations do not replay.
type Thresholds struct {
	watermark int
}

func NewThresholds() *Thresholds {
	return &Thresholds{}
}

// Resume seeds the watermark at the highest level already reached by
// overall, suppressing levels the session crossed before it was reloaded.
func Resume(overall float64) *Thresholds {
	t := &Thresholds{}
	for _, lvl := range Levels {
		if overall >= float64(lvl) {
			t.watermark = lvl
		}
	}
	return t
}

// Advance returns the levels newly crossed by overall, in ascending order,
// and moves the watermark past them. Progress dips never lower the
// watermark.
func (t *Thresholds) Advance(overall float64) []int {
	var crossed []int
	for _, lvl := range Levels {
		if lvl > t.watermark && overall >= float64(lvl) {
			crossed = append(crossed, lvl)
			t.watermark = lvl
		}
	}
	return crossed
}
