package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/timeaxis/pkg/core/coord"
	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
	"github.com/matzehuels/timeaxis/pkg/errors"
)

// model hides the value type of a coordinate behind string values, so
// callers can handle every kind alike.
type model interface {
	// bounds returns the normalized begin and end.
	bounds() (string, string)
	layout(maxPoints int, px coord.PixelRange) axis.Layout
	mapValue(v string, px coord.PixelRange) (int, error)
	step(v string, n int) (string, error)
}

type typedModel[T fmt.Stringer] struct {
	kind  string
	coord coord.Ranged[T]
	parse func(string) (T, error)
	label axis.Labeler[T]
}

func (m typedModel[T]) bounds() (string, string) {
	b, e := m.coord.Range()
	return b.String(), e.String()
}

func (m typedModel[T]) layout(maxPoints int, px coord.PixelRange) axis.Layout {
	l := axis.Build(m.coord, maxPoints, px, m.label)
	l.Kind = m.kind
	return l
}

func (m typedModel[T]) mapValue(s string, px coord.PixelRange) (int, error) {
	v, err := m.parse(s)
	if err != nil {
		return 0, err
	}
	return m.coord.Map(v, px), nil
}

func (m typedModel[T]) step(s string, n int) (string, error) {
	d, ok := m.coord.(coord.Discrete[T])
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidKind, "%s axes have no unit step (use date, monthly or yearly)", m.kind)
	}
	v, err := m.parse(s)
	if err != nil {
		return "", err
	}
	for ; n > 0; n-- {
		v = d.Next(v)
	}
	for ; n < 0; n++ {
		v = d.Previous(v)
	}
	return v.String(), nil
}

// newModel parses the bounds of o and builds its coordinate. o must have
// been validated.
func newModel(o *Options) (model, error) {
	loc := o.Location()
	switch o.Kind {
	case KindDate:
		return dateModel(o, loc, func(b, e coord.Date) coord.Ranged[coord.Date] { return coord.NewDateCoord(b, e) })
	case KindDateTime:
		return dateTimeModel(o, loc, func(b, e coord.DateTime) coord.Ranged[coord.DateTime] { return coord.NewDateTimeCoord(b, e) })
	case KindDuration:
		begin, err := ParseDuration(o.Begin)
		if err != nil {
			return nil, err
		}
		end, err := ParseDuration(o.End)
		if err != nil {
			return nil, err
		}
		return typedModel[time.Duration]{
			kind:  o.Kind,
			coord: coord.NewDurationCoord(begin, end),
			parse: ParseDuration,
			label: axis.DurationLabels(),
		}, nil
	case KindMonthly:
		if isDateOnly(o.Begin) && isDateOnly(o.End) {
			return dateModel(o, loc, func(b, e coord.Date) coord.Ranged[coord.Date] { return coord.NewMonthlyCoord(b, e) })
		}
		return dateTimeModel(o, loc, func(b, e coord.DateTime) coord.Ranged[coord.DateTime] { return coord.NewMonthlyCoord(b, e) })
	case KindYearly:
		if isDateOnly(o.Begin) && isDateOnly(o.End) {
			return dateModel(o, loc, func(b, e coord.Date) coord.Ranged[coord.Date] { return coord.NewYearlyCoord(b, e) })
		}
		return dateTimeModel(o, loc, func(b, e coord.DateTime) coord.Ranged[coord.DateTime] { return coord.NewYearlyCoord(b, e) })
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "unknown axis kind %q", o.Kind)
}

func dateModel(o *Options, loc *time.Location, build func(b, e coord.Date) coord.Ranged[coord.Date]) (model, error) {
	parse := func(s string) (coord.Date, error) { return ParseDate(s, loc) }
	begin, err := parse(o.Begin)
	if err != nil {
		return nil, err
	}
	end, err := parse(o.End)
	if err != nil {
		return nil, err
	}
	return typedModel[coord.Date]{
		kind:  o.Kind,
		coord: build(begin, end),
		parse: parse,
		label: axis.TimeLabels[coord.Date](o.LabelFormat),
	}, nil
}

func dateTimeModel(o *Options, loc *time.Location, build func(b, e coord.DateTime) coord.Ranged[coord.DateTime]) (model, error) {
	parse := func(s string) (coord.DateTime, error) { return ParseDateTime(s, loc) }
	begin, err := parse(o.Begin)
	if err != nil {
		return nil, err
	}
	end, err := parse(o.End)
	if err != nil {
		return nil, err
	}
	return typedModel[coord.DateTime]{
		kind:  o.Kind,
		coord: build(begin, end),
		parse: parse,
		label: axis.TimeLabels[coord.DateTime](o.LabelFormat),
	}, nil
}
