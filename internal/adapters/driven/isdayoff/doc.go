// Package isdayoff provides a day-type oracle backed by an isdayoff-compatible
// HTTP service.
//
// The service answers GET <base>/<YYYYMMDD> with a bare code in the body:
// 0 workday, 1 day off, 2 shortened workday, 4 special non-working day.
// Each lookup is a single request; failures are reported, never retried.
package isdayoff
