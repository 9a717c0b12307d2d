// Package daytime implements calendar Date, day Time with selectable
// precision and their DateTime composition.
//
// Date counts days since 1900-01-01 and derives Gregorian calendar fields on
// demand. Time counts precision ticks since midnight and wraps at the day
// boundary. Both carry fixed whole-hour Offset instead of time zone database
// lookups.
//
// Values are rendered by String through process-wide default formatters
// that can be replaced with SetDefaultDateFormatter and friends, or per
// value with SetFormatter. MarshalText always uses the canonical layout:
//
//	2024-02-29
//	10:20:30.400+05
//	2024-02-29T10:20:30
package daytime
