// Package stats prints the analytics dashboard and the rank ladder.
package stats

import (
	"context"
	"errors"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
	"tableflip.dev/writersblock/pkg/timeutil"
)

type Stats struct {
	Service *app.Service
	Range   timeutil.DateRange
	JSON    bool
}

func (s *Stats) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not compute stats, no service")
	}
	r, err := s.Service.Report(ctx, s.Range)
	if err != nil {
		return err
	}
	if s.JSON {
		return printers.JSON(nil, r)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Report(r)
	return nil
}

// Ranks prints every rank with the current one marked.
type Ranks struct {
	Service *app.Service
	JSON    bool
}

func (r *Ranks) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not list ranks, no service")
	}
	rep, err := r.Service.Report(ctx, timeutil.AllTime())
	if err != nil {
		return err
	}
	if r.JSON {
		return printers.JSON(nil, rep.Summary)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Ranks(rep.Summary.TotalWords)
	return nil
}
