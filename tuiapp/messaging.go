package tuiapp

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/micutio/launchday/internal"
)

// pictureTarget tells which slot a picture response belongs to.
type pictureTarget int

const (
	launchPicture     pictureTarget = iota // picture next to the launch results
	standalonePicture                      // picture-only lookup
)

// Fetcher is the part of internal.Launchpad the TUI needs to talk to the outside world.
type Fetcher interface {
	Submit(session internal.Session, key internal.DateKey) internal.Session
	FetchPicture(ctx context.Context, date internal.DateKey) (internal.Picture, error)
	FetchSummary(ctx context.Context, subject string) (string, error)
}

type PictureResponseMsg struct {
	target  pictureTarget
	date    internal.DateKey
	picture internal.Picture
	err     error
}

type SummaryResponseMsg struct {
	date    internal.DateKey
	subject string
	summary string
	err     error
}

func requestPictureCmd(fetcher Fetcher, target pictureTarget, date internal.DateKey) tea.Cmd {
	return func() tea.Msg {
		picture, err := fetcher.FetchPicture(context.Background(), date)
		return PictureResponseMsg{target: target, date: date, picture: picture, err: err}
	}
}

func requestSummaryCmd(fetcher Fetcher, date internal.DateKey, subject string) tea.Cmd {
	return func() tea.Msg {
		summary, err := fetcher.FetchSummary(context.Background(), subject)
		return SummaryResponseMsg{date: date, subject: subject, summary: summary, err: err}
	}
}
