package ui

import (
	"context"
	"errors"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/tui/dashboard"
)

// UI runs the full-screen dashboard.
type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("ui: service is required")
	}
	if _, err := u.Service.Load(ctx); err != nil {
		return err
	}
	return dashboard.Run(ctx, u.Service)
}
