package internal

import (
	"context"
	"fmt"
	"log/slog"
)

// PictureFetcher fetches the picture of the day for a date.
type PictureFetcher interface {
	Fetch(ctx context.Context, date DateKey) (Picture, error)
}

// Launchpad wires the read-only dataset to the external providers. It holds no session state;
// sessions are passed in and returned.
type Launchpad struct {
	records      []LaunchRecord
	pictures     PictureFetcher
	summaries    SummaryProvider
	summaryChars int
	observer     Coordinates
	logger       *slog.Logger
}

func NewLaunchpad(
	records []LaunchRecord,
	pictures PictureFetcher,
	summaries SummaryProvider,
	summaryChars int,
	observer Coordinates,
	logger *slog.Logger,
) *Launchpad {
	if logger == nil {
		logger = slog.Default()
	}

	return &Launchpad{
		records:      records,
		pictures:     pictures,
		summaries:    summaries,
		summaryChars: summaryChars,
		observer:     observer,
		logger:       logger,
	}
}

// NewLaunchpadFromConfig creates the HTTP backed providers described by cfg.
func NewLaunchpadFromConfig(cfg *Config, dataset *Dataset, logger *slog.Logger) *Launchpad {
	client := NewHTTPClient(cfg.GetHTTPTimeout())

	return NewLaunchpad(
		dataset.Records,
		NewPictureClient(client, cfg.Picture.BaseURL, cfg.Picture.APIKey, logger),
		NewWikipediaClient(client, cfg.Summary.BaseURL, cfg.Summary.UserAgent),
		cfg.Summary.MaxChars,
		cfg.ObserverLocation(),
		logger)
}

// Submit validates key and runs the lookup. No request is sent; see FetchPicture and FetchSummary.
func (lp *Launchpad) Submit(session Session, key DateKey) Session {
	next := session.SubmitDate(key, lp.records, lp.observer)
	if next.InputErr != nil {
		lp.logger.Info("rejected date input", slog.Any("error", next.InputErr))
		return next
	}

	lp.logger.Debug("date submitted",
		slog.String("date", key.ISO()),
		slog.Int("launches", len(next.Launches)),
		slog.Bool("map", next.HasMap))

	return next
}

// FetchPicture requests the picture for date once, no retries.
func (lp *Launchpad) FetchPicture(ctx context.Context, date DateKey) (Picture, error) {
	picture, err := lp.pictures.Fetch(ctx, date)
	if err != nil {
		lp.logger.Error("picture request failed", slog.String("date", date.ISO()), slog.Any("error", err))
		return Picture{}, fmt.Errorf("launchpad: %w", err)
	}

	return picture, nil
}

// FetchSummary looks up the summary of subject, bounded to the configured budget.
func (lp *Launchpad) FetchSummary(ctx context.Context, subject string) (string, error) {
	summary, atBoundary, err := MissionSummary(ctx, lp.summaries, subject, lp.summaryChars)
	if err != nil {
		lp.logger.Error("summary request failed", slog.String("subject", subject), slog.Any("error", err))
		return "", fmt.Errorf("launchpad: %w", err)
	}

	if !atBoundary {
		lp.logger.Warn("summary truncated mid-sentence",
			slog.String("subject", subject),
			slog.Int("maxChars", lp.summaryChars))
	}

	return summary, nil
}

// SubmitAndFetch runs one complete synchronous pass: lookup, picture and summary.
// Fetch failures end up as warnings in the returned session.
func (lp *Launchpad) SubmitAndFetch(ctx context.Context, session Session, key DateKey) Session {
	next := lp.Submit(session, key)
	if next.InputErr != nil {
		return next
	}

	if picture, err := lp.FetchPicture(ctx, key); err != nil {
		next = next.WithPictureError(key, err)
	} else {
		next = next.WithPicture(key, picture)
	}

	if next.SummarySubject != "" {
		if summary, err := lp.FetchSummary(ctx, next.SummarySubject); err != nil {
			next = next.WithSummaryError(key, next.SummarySubject, err)
		} else {
			next = next.WithSummary(key, next.SummarySubject, summary)
		}
	}

	return next
}

// SubmitPictureAndFetch runs the picture-only lookup synchronously.
func (lp *Launchpad) SubmitPictureAndFetch(ctx context.Context, session Session, key DateKey) Session {
	next := session.SubmitPictureDate(key)
	if next.StandaloneInputErr != nil {
		return next
	}

	picture, err := lp.FetchPicture(ctx, key)
	if err != nil {
		return next.WithStandalonePictureError(key, err)
	}

	return next.WithStandalonePicture(key, picture)
}
