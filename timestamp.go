// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import "time"

// currentTime is the default CurrentTime source: a monotonic
// nanosecond-ish counter derived from the process start, paired with a
// fixed timeline of 0. Hosts needing a different clock, or deterministic
// values for tests, should override it via PALCallbacks.CurrentTime.
func currentTime() Timestamp {
	return Timestamp{Value: uint64(time.Since(processStart)), Timeline: 0}
}

var processStart = time.Now()
