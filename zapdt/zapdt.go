// Package zapdt renders daytime values in zap logs.
package zapdt

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-faster/daytime"
)

// Date constructs a field with d rendered by its formatter.
func Date(key string, d daytime.Date) zap.Field {
	return zap.Stringer(key, d)
}

// Time constructs a field with t rendered by its formatter.
func Time(key string, t daytime.Time) zap.Field {
	return zap.Stringer(key, t)
}

// DateTime constructs a field with dt rendered by its formatter.
func DateTime(key string, dt daytime.DateTime) zap.Field {
	return zap.Stringer(key, dt)
}

// Calendar constructs a field with calendar fields of d.
func Calendar(key string, d daytime.Date) zap.Field {
	return zap.Object(key, calendar(d))
}

type calendar daytime.Date

func (c calendar) MarshalLogObject(e zapcore.ObjectEncoder) error {
	d := daytime.Date(c)
	year, month, day := d.Fields()
	e.AddInt("year", year)
	e.AddString("month", month.String())
	e.AddInt("day", day)
	e.AddString("weekday", d.Weekday().String())
	e.AddInt("year_day", d.YearDay())
	e.AddInt64("days", d.Days())
	e.AddBool("leap", daytime.IsLeapYear(year))
	return nil
}

// TimeEncoder renders entry time as DateTime at offset o with precision p.
func TimeEncoder(o daytime.Offset, p daytime.Precision) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(daytime.DateTimeOf(t, o, p).String())
	}
}

// NewLogger builds logger from cfg with TimeEncoder(o, p) as time encoder.
func NewLogger(cfg zap.Config, o daytime.Offset, p daytime.Precision, opts ...zap.Option) (*zap.Logger, error) {
	cfg.EncoderConfig.EncodeTime = TimeEncoder(o, p)
	return cfg.Build(opts...)
}
