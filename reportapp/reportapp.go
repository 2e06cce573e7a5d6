// Package reportapp launches the report application which writes the launches, picture and
// mission description of a single date to stdout, so that it can be piped into other programs.
// This is in contrast to the TUI app, which is interactive.
package reportapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/micutio/launchday/internal"
)

var errInvalidInput = errors.New("invalid date input")

// Runner is the part of internal.Launchpad the report needs.
type Runner interface {
	SubmitAndFetch(ctx context.Context, session internal.Session, key internal.DateKey) internal.Session
	SubmitPictureAndFetch(ctx context.Context, session internal.Session, key internal.DateKey) internal.Session
}

// Options selects what the report contains.
type Options struct {
	Date        string // launch date, YYYY-MM-DD
	PictureDate string // optional picture-only date, YYYY-MM-DD
	Notify      bool   // send a desktop notification naming the launches
}

// Run prints the report for opts and returns an error only for invalid date input.
// Failed requests show up as warnings in the report.
func Run(ctx context.Context, runner Runner, notify *internal.Notify, logger *slog.Logger, opts Options) error {
	session := internal.NewSession()

	if opts.Date != "" {
		key, err := internal.ParseDateKey(opts.Date)
		if err != nil {
			notify.Stdout.Println(internal.InvalidDateText)
			return fmt.Errorf("reportapp: %w: %w", errInvalidInput, err)
		}

		session = runner.SubmitAndFetch(ctx, session, key)
		notify.PrintReport(&session)

		if opts.Notify {
			if notifyErr := notify.EmitLaunchNotification(&session); notifyErr != nil {
				logger.Error("desktop notification failed", slog.Any("error", notifyErr))
			}
		}
	}

	if opts.PictureDate != "" {
		key, err := internal.ParseDateKey(opts.PictureDate)
		if err != nil {
			notify.Stdout.Println(internal.InvalidPictureDateText)
			return fmt.Errorf("reportapp: %w: %w", errInvalidInput, err)
		}

		session = runner.SubmitPictureAndFetch(ctx, session, key)
		notify.PrintPicture(&session)
	}

	return nil
}
