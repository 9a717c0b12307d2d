// Package oteldt implements OpenTelemetry attributes for daytime values.
package oteldt

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/go-faster/daytime"
)

const (
	DateKey      = attribute.Key("daytime.date")
	TimeKey      = attribute.Key("daytime.time")
	DateTimeKey  = attribute.Key("daytime.datetime")
	PrecisionKey = attribute.Key("daytime.precision")
	OffsetKey    = attribute.Key("daytime.offset")
	WeekdayKey   = attribute.Key("daytime.weekday")
)

// Date attribute.
func Date(v daytime.Date) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   DateKey,
		Value: attribute.StringValue(v.String()),
	}
}

// Time attribute.
func Time(v daytime.Time) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   TimeKey,
		Value: attribute.StringValue(v.String()),
	}
}

// DateTime attribute.
func DateTime(v daytime.DateTime) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   DateTimeKey,
		Value: attribute.StringValue(v.String()),
	}
}

// Precision attribute.
func Precision(v daytime.Precision) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   PrecisionKey,
		Value: attribute.StringValue(v.String()),
	}
}

// Offset attribute, in hours.
func Offset(v daytime.Offset) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   OffsetKey,
		Value: attribute.IntValue(int(v)),
	}
}

// Weekday attribute.
func Weekday(v daytime.Date) attribute.KeyValue {
	return attribute.KeyValue{
		Key:   WeekdayKey,
		Value: attribute.StringValue(v.Weekday().String()),
	}
}

// Attributes returns all attributes of dt.
func Attributes(dt daytime.DateTime) []attribute.KeyValue {
	return []attribute.KeyValue{
		DateTime(dt),
		Precision(dt.Time().Precision()),
		Offset(dt.Time().Offset()),
		Weekday(dt.Date()),
	}
}
