package monitor

import "time"

// Retry runs fn up to attempts times. After failed attempt n it sleeps
// base*2^(n-1) before trying again; there is no delay before the first
// attempt. After the budget is exhausted it returns the zero value and
// false, which callers treat as "no data for this target in this run",
// never as a fatal error. The sleep function is injected so tests can
// observe backoff without waiting it out.
func Retry[T any](attempts int, base time.Duration, sleep func(time.Duration), fn func(attempt int) (T, error)) (T, bool) {
	var zero T
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(attempt)
		if err == nil {
			return result, true
		}
		if attempt < attempts {
			sleep(base << (attempt - 1))
		}
	}
	return zero, false
}
