package internal

import (
	"fmt"
)

// Texts for the empty states of each display slot.
const (
	NoMissionText          = "No mission found on this date."
	NoImageText            = "No image available for this date."
	NoLocationText         = "No valid mission location data for this date to display on the map."
	InvalidDateText        = "Please enter a valid date."
	InvalidPictureDateText = "Please enter a valid picture date."
)

// PictureSlot is the display state of one picture of the day.
type PictureSlot struct {
	Date      DateKey
	Requested bool
	Pending   bool
	Picture   Picture
	Warning   string // set if the request failed, the picture is cleared then
}

// Message returns the text to show instead of the picture, or "" if the picture can be shown.
func (ps *PictureSlot) Message() string {
	switch {
	case ps.Pending:
		return "Loading picture..."
	case ps.Warning != "":
		return ps.Warning
	case !ps.Picture.HasImage() && ps.Picture.Msg != "":
		return fmt.Sprintf("%s (%s)", NoImageText, ps.Picture.Msg)
	case !ps.Picture.HasImage():
		return NoImageText
	default:
		return ""
	}
}

// Session is the immutable state of one user session. Every transition returns a new Session
// and leaves the receiver untouched, so a view can never observe a half-applied update.
// Slices are shared between sessions and must be treated as read-only.
type Session struct {
	Submitted    bool
	SelectedDate DateKey
	InputErr     error
	Launches     []LaunchRecord
	StatusCounts []PropertyCountTuple
	Map          MapView
	HasMap       bool
	Picture      PictureSlot
	// SummarySubject is the mission whose summary is shown, empty if nothing can be summarized.
	SummarySubject string
	SummaryPending bool
	Summary        string
	SummaryWarning string
	// Standalone is the independent picture-only lookup.
	Standalone         PictureSlot
	StandaloneInputErr error
}

// NewSession returns the state before the first submit.
func NewSession() Session {
	return Session{} //nolint:exhaustruct // zero value is the initial state
}

// SubmitDate runs the launch lookup for key. An invalid key clears every result slot, so that
// nothing from a previous submit stays on screen. The picture and summary slots are marked pending
// and must be filled by WithPicture and WithSummary.
func (s Session) SubmitDate(key DateKey, records []LaunchRecord, observer Coordinates) Session {
	if err := key.Validate(); err != nil {
		return Session{ //nolint:exhaustruct // results are cleared on purpose
			InputErr:           err,
			Standalone:         s.Standalone,
			StandaloneInputErr: s.StandaloneInputErr,
		}
	}

	launches := Lookup(records, key)

	next := Session{ //nolint:exhaustruct // summary fields are set below
		Submitted:          true,
		SelectedDate:       key,
		Launches:           launches,
		StatusCounts:       CountByStatus(launches),
		Picture:            PictureSlot{Date: key, Requested: true, Pending: true}, //nolint:exhaustruct // empty picture
		Standalone:         s.Standalone,
		StandaloneInputErr: s.StandaloneInputErr,
	}

	mapView, mapErr := NewMapView(launches, observer)
	if mapErr == nil {
		next.Map = mapView
		next.HasMap = true
		// The first plottable mission is the one being described, same as the map center.
		next.SummarySubject = mapView.Markers[0].Mission
		next.SummaryPending = next.SummarySubject != ""
	}

	return next
}

// WithPicture stores the fetched picture for date. Pictures for any other date are stale and dropped.
func (s Session) WithPicture(date DateKey, picture Picture) Session {
	if !s.Picture.Requested || s.Picture.Date != date {
		return s
	}

	s.Picture = PictureSlot{Date: date, Requested: true, Pending: false, Picture: picture, Warning: ""}
	return s
}

// WithPictureError clears the picture slot and shows a warning instead.
func (s Session) WithPictureError(date DateKey, err error) Session {
	if !s.Picture.Requested || s.Picture.Date != date {
		return s
	}

	s.Picture = failedPictureSlot(date, err)
	return s
}

// WithSummary stores the summary of subject if it is still the one being shown.
func (s Session) WithSummary(date DateKey, subject, summary string) Session {
	if !s.Submitted || s.SelectedDate != date || s.SummarySubject != subject {
		return s
	}

	s.Summary = summary
	s.SummaryPending = false
	s.SummaryWarning = ""
	return s
}

// WithSummaryError clears the summary slot and shows a warning instead.
func (s Session) WithSummaryError(date DateKey, subject string, err error) Session {
	if !s.Submitted || s.SelectedDate != date || s.SummarySubject != subject {
		return s
	}

	s.Summary = ""
	s.SummaryPending = false
	s.SummaryWarning = fmt.Sprintf("Error fetching mission summary: %v", err)
	return s
}

// SubmitPictureDate starts the picture-only lookup. The launch results are never touched.
func (s Session) SubmitPictureDate(key DateKey) Session {
	if err := key.Validate(); err != nil {
		s.Standalone = PictureSlot{} //nolint:exhaustruct // cleared
		s.StandaloneInputErr = err
		return s
	}

	s.Standalone = PictureSlot{Date: key, Requested: true, Pending: true} //nolint:exhaustruct // empty picture
	s.StandaloneInputErr = nil
	return s
}

// WithStandalonePicture stores the picture of the picture-only lookup.
func (s Session) WithStandalonePicture(date DateKey, picture Picture) Session {
	if !s.Standalone.Requested || s.Standalone.Date != date {
		return s
	}

	s.Standalone = PictureSlot{Date: date, Requested: true, Pending: false, Picture: picture, Warning: ""}
	return s
}

// WithStandalonePictureError clears the picture-only slot and shows a warning instead.
func (s Session) WithStandalonePictureError(date DateKey, err error) Session {
	if !s.Standalone.Requested || s.Standalone.Date != date {
		return s
	}

	s.Standalone = failedPictureSlot(date, err)
	return s
}

// MissionMessage returns the text to show instead of the launch list, or "" if there are launches.
func (s *Session) MissionMessage() string {
	if !s.Submitted {
		return ""
	}

	if len(s.Launches) == 0 {
		return NoMissionText
	}

	return ""
}

// MapMessage returns the text to show instead of the map, or "" if there is a map.
func (s *Session) MapMessage() string {
	if !s.Submitted || s.HasMap {
		return ""
	}

	return NoLocationText
}

func failedPictureSlot(date DateKey, err error) PictureSlot {
	return PictureSlot{
		Date:      date,
		Requested: true,
		Pending:   false,
		Picture:   Picture{}, //nolint:exhaustruct // cleared
		Warning:   fmt.Sprintf("Error fetching NASA image: %v", err),
	}
}
