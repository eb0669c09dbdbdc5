package calculation

import "time"

// nowFunc stamps ProjectionResult.GeneratedAt (override in tests for determinism).
var nowFunc = func() time.Time { return time.Now().UTC() }

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }
