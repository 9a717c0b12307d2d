// Binary daytime parses, shifts and describes dates and times.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-faster/daytime"
	"github.com/go-faster/daytime/internal/cmd/app"
	"github.com/go-faster/daytime/internal/compress"
	"github.com/go-faster/daytime/internal/version"
	"github.com/go-faster/daytime/proto"
	"github.com/go-faster/daytime/zapdt"
)

const usage = `Usage: daytime [-offset N] [-precision P] <command> [args]

Commands:
  parse <value>...    parse dates, times and date-times
  now                 print current date-time
  add [flags] <value> shift date or time
  info <date>         describe date
  encode [-method M] <datetime>...
                      write compressed block of date-times
  decode              read blocks written by encode from stdin
  version             print version
`

type options struct {
	Offset    daytime.Offset
	Precision daytime.Precision
	Now       func() time.Time
}

func run(ctx context.Context, lg *zap.Logger, args []string, in io.Reader, out io.Writer) error {
	var (
		set       = flag.NewFlagSet("daytime", flag.ContinueOnError)
		offset    = set.Int("offset", 0, "offset in hours, from -12 to 12")
		precision = set.String("precision", daytime.DefaultPrecision.String(), "time precision")
	)
	set.SetOutput(io.Discard)
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	o, err := daytime.NewOffset(*offset)
	if err != nil {
		return errors.Wrap(err, "offset")
	}
	p, err := daytime.PrecisionString(*precision)
	if err != nil {
		return errors.Wrap(err, "precision")
	}
	opt := options{
		Offset:    o,
		Precision: p,
		Now:       time.Now,
	}
	return runCommand(ctx, lg, opt, set.Args(), in, out)
}

func runCommand(ctx context.Context, lg *zap.Logger, opt options, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		_, _ = io.WriteString(out, usage)
		return errors.New("no command")
	}
	cmd, args := args[0], args[1:]
	lg.Debug("Running", zap.String("command", cmd), zap.Strings("args", args))
	switch cmd {
	case "parse":
		return parse(lg, args, out)
	case "now":
		dt := daytime.DateTimeOf(opt.Now(), opt.Offset, opt.Precision)
		_, err := fmt.Fprintln(out, dt)
		return err
	case "add":
		return add(lg, args, out)
	case "info":
		return info(lg, args, out)
	case "encode":
		return encode(lg, opt, args, out)
	case "decode":
		return decode(ctx, lg, in, out)
	case "version":
		_, err := fmt.Fprintln(out, "daytime", version.Get().Raw)
		return err
	default:
		_, _ = io.WriteString(out, usage)
		return errors.Errorf("unknown command %q", cmd)
	}
}

// parseValue detects kind of s by separators.
func parseValue(s string) (kind string, v fmt.Stringer, err error) {
	switch {
	case strings.Contains(s, "T"):
		dt, err := daytime.ParseDateTime(s)
		return "datetime", dt, err
	case strings.Contains(s, ":"):
		t, err := daytime.ParseTime(s)
		return "time", t, err
	default:
		d, err := daytime.ParseDate(s)
		return "date", d, err
	}
}

func parse(lg *zap.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("nothing to parse")
	}
	var rErr error
	for _, arg := range args {
		kind, v, err := parseValue(arg)
		if err != nil {
			rErr = multierr.Append(rErr, errors.Wrapf(err, "parse %q", arg))
			continue
		}
		lg.Debug("Parsed", zap.String("kind", kind), zap.Stringer("value", v))
		switch v := v.(type) {
		case daytime.Time:
			fmt.Fprintf(out, "%-8s %s (%s)\n", kind, v, v.Precision())
		case daytime.DateTime:
			fmt.Fprintf(out, "%-8s %s (%s)\n", kind, v, v.Time().Precision())
		default:
			fmt.Fprintf(out, "%-8s %s\n", kind, v)
		}
	}
	return rErr
}

func add(lg *zap.Logger, args []string, out io.Writer) error {
	var (
		set    = flag.NewFlagSet("add", flag.ContinueOnError)
		years  = set.Int("years", 0, "years to add")
		months = set.Int("months", 0, "months to add")
		days   = set.Int("days", 0, "days to add")
		hours  = set.Int("hours", 0, "hours to add")
		mins   = set.Int("minutes", 0, "minutes to add")
		secs   = set.Int("seconds", 0, "seconds to add")
		ms     = set.Int("ms", 0, "milliseconds to add")
		us     = set.Int("us", 0, "microseconds to add")
		ns     = set.Int("ns", 0, "nanoseconds to add")
	)
	set.SetOutput(io.Discard)
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	if set.NArg() != 1 {
		return errors.New("expected single value")
	}
	kind, v, err := parseValue(set.Arg(0))
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	switch v := v.(type) {
	case daytime.Date:
		r := v.AddYears(*years).AddMonths(*months).AddDays(*days)
		lg.Debug("Shifted", zapdt.Date("from", v), zapdt.Date("to", r))
		_, err = fmt.Fprintln(out, r)
	case daytime.Time:
		r := v.AddHours(*hours).
			AddMinutes(*mins).
			AddSeconds(*secs).
			AddMilliseconds(*ms).
			AddMicroseconds(*us).
			AddNanoseconds(*ns)
		lg.Debug("Shifted", zapdt.Time("from", v), zapdt.Time("to", r))
		_, err = fmt.Fprintln(out, r)
	default:
		return errors.Errorf("cannot shift %s", kind)
	}
	return err
}

func info(lg *zap.Logger, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("expected single date")
	}
	d, err := daytime.ParseDate(args[0])
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	lg.Debug("Info", zapdt.Calendar("date", d))

	year, month, day := d.Fields()
	w := &errWriter{w: out}
	w.printf("date:     %s\n", d)
	w.printf("weekday:  %s\n", d.Weekday())
	w.printf("month:    %s, %s of %d days\n", month, humanize.Ordinal(day), daytime.DaysInMonth(year, month))
	w.printf("year:     %d, %s of %d days\n", year, humanize.Ordinal(d.YearDay()), daytime.DaysInYear(year))
	w.printf("number:   %s\n", humanize.Comma(d.Days()))
	w.printf("leap:     %t\n", daytime.IsLeapYear(year))
	w.printf("weekend:  %t\n", d.IsWeekend())
	return w.err
}

func encode(lg *zap.Logger, opt options, args []string, out io.Writer) error {
	set := flag.NewFlagSet("encode", flag.ContinueOnError)
	method := set.String("method", compress.LZ4.String(), "compression method")
	set.SetOutput(io.Discard)
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	m, err := compress.MethodString(*method)
	if err != nil {
		return errors.Wrap(err, "method")
	}
	if set.NArg() == 0 {
		return errors.New("nothing to encode")
	}

	var col proto.ColDateTime
	for i, arg := range set.Args() {
		dt, err := daytime.ParseDateTime(arg)
		if err != nil {
			return errors.Wrapf(err, "parse %q", arg)
		}
		t := dt.Time().WithPrecision(opt.Precision)
		if i == 0 {
			col.Time.WithPrecision(t.Precision(), t.Offset())
		}
		if t.Offset() != col.Time.Offset {
			return errors.Errorf("%q: offset %s differs from %s", arg, t.Offset(), col.Time.Offset)
		}
		col.Append(daytime.NewDateTime(dt.Date(), t))
	}

	var (
		buf   proto.Buffer
		input = []proto.InputColumn{{Name: "value", Data: &col}}
		block = proto.Block{Columns: len(input), Rows: col.Rows()}
	)
	if err := block.EncodeCompressed(&buf, compress.NewWriter(m), m, input); err != nil {
		return errors.Wrap(err, "encode")
	}
	lg.Info("Encoded",
		zap.Int("rows", block.Rows),
		zap.Stringer("method", m),
		zap.String("size", humanize.Bytes(uint64(len(buf.Buf)))),
	)
	if _, err := out.Write(buf.Buf); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

func decode(ctx context.Context, lg *zap.Logger, in io.Reader, out io.Writer) error {
	var (
		r      = proto.NewCompressedReader(in)
		rows   int
		blocks int
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			block proto.Block
			col   proto.ColDateTime
		)
		if err := block.DecodeBlock(r, proto.Results{{Name: "value", Data: &col}}); err != nil {
			if errors.Is(err, io.EOF) && blocks > 0 {
				break
			}
			return errors.Wrapf(err, "block %d", blocks)
		}
		for i := 0; i < col.Rows(); i++ {
			if _, err := fmt.Fprintln(out, col.Row(i)); err != nil {
				return errors.Wrap(err, "write")
			}
		}
		blocks++
		rows += block.Rows
	}
	lg.Info("Decoded",
		zap.Int("blocks", blocks),
		zap.String("rows", humanize.Comma(int64(rows))),
	)
	return nil
}

// errWriter keeps first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		return run(ctx, lg, os.Args[1:], os.Stdin, os.Stdout)
	})
}
