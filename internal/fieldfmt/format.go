// Package fieldfmt converts raw field values into display strings for a
// presentation layer: monetary amounts, timestamps, masked secrets,
// percentages, booleans, and durations. Each call is a pure function of
// its input; formatters hold no mutable state and are safe for
// concurrent use.
package fieldfmt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/svcfmt/fieldfmt/pkg/dateutil"
	money "github.com/svcfmt/fieldfmt/pkg/decimal"
)

// Formatter maps (kind, value) pairs to display strings.
type Formatter struct {
	loc *time.Location
	log Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation pins the zone used by the date formatter. The default is
// the local system zone.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) { f.loc = loc }
}

// WithLogger installs a logger for coercion diagnostics.
func WithLogger(log Logger) Option {
	return func(f *Formatter) { f.log = log }
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{loc: time.Local, log: NopLogger{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// renderers is the kind dispatch table.
var renderers = map[Kind]func(*Formatter, any) (string, error){
	Monetary:   (*Formatter).renderMonetary,
	Date:       (*Formatter).renderDate,
	Masked:     (*Formatter).renderMasked,
	Percentage: (*Formatter).renderPercentage,
	Boolean:    (*Formatter).renderBoolean,
	Duration:   (*Formatter).renderDuration,
}

// Format renders value according to kind. The only failure mode is an
// *InvalidValueError for values that cannot be coerced to the kind's
// expected representation.
func (f *Formatter) Format(kind Kind, value any) (string, error) {
	render, ok := renderers[kind]
	if !ok {
		return "", fmt.Errorf("unknown formatter kind %v", kind)
	}
	out, err := render(f, value)
	if err != nil {
		f.log.Debugf("format %s rejected %T: %v", kind, value, err)
		return "", err
	}
	return out, nil
}

func (f *Formatter) renderMonetary(v any) (string, error) {
	d, err := coerceDecimal(v)
	if err != nil {
		return "", invalidValue(Monetary, v, err)
	}
	return money.NewMoneyFromDecimal(d).Format(), nil
}

func (f *Formatter) renderDate(v any) (string, error) {
	t, err := coerceTime(v, f.loc)
	if err != nil {
		return "", invalidValue(Date, v, err)
	}
	return dateutil.FormatDisplay(t, f.loc), nil
}

func (f *Formatter) renderMasked(v any) (string, error) {
	text := fmt.Sprint(v)
	return strings.Repeat("*", utf8.RuneCountInString(text)), nil
}

func (f *Formatter) renderPercentage(v any) (string, error) {
	d, err := coerceDecimal(v)
	if err != nil {
		return "", invalidValue(Percentage, v, err)
	}
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%", nil
}

func (f *Formatter) renderBoolean(v any) (string, error) {
	b, err := coerceBool(v)
	if err != nil {
		return "", invalidValue(Boolean, v, err)
	}
	if b {
		return "True", nil
	}
	return "False", nil
}

func (f *Formatter) renderDuration(v any) (string, error) {
	d, err := coerceDuration(v)
	if err != nil {
		return "", invalidValue(Duration, v, err)
	}
	return renderInterval(d), nil
}

// defaultFormatter backs the package-level Format and is bound to the
// local system zone.
var defaultFormatter = New()

// Format renders value according to kind using the default formatter.
func Format(kind Kind, value any) (string, error) {
	return defaultFormatter.Format(kind, value)
}
