// SPDX-License-Identifier: MIT

package bench

import "time"

// Clock supplies timestamps to the runner. Elapsed time is always computed
// as end.Sub(start), so a clock whose Time values carry a monotonic reading
// (as time.Now does) is immune to wall-clock jumps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
