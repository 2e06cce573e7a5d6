package internal

import (
	"fmt"
	"io"
	"log" //nolint:depguard // Don't feel like using slog
	"strings"

	"github.com/gen2brain/beeep"
)

const (
	// appIconPath is empty, notifications use the default icon of the platform.
	appIconPath = ""
	// maxNotifiedMissions limits how many mission names go into one desktop notification.
	maxNotifiedMissions = 3
)

// notifyFunc sends a desktop notification, replaced in tests.
type notifyFunc func(title, message, iconPath string) error

type Notify struct {
	Stdout *log.Logger
	notify notifyFunc
}

func NewNotify(appName string, consoleOut io.Writer) *Notify {
	beeep.AppName = appName //nolint:reassign // This is the only way to set app name in beeep.
	return &Notify{
		Stdout: log.New(consoleOut, "", 0),
		notify: func(title, message, iconPath string) error {
			return beeep.Notify(title, message, iconPath)
		},
	}
}

// PrintReport prints launches, status breakdown, picture, map markers and summary of a session.
func (notify *Notify) PrintReport(session *Session) {
	if session.InputErr != nil {
		notify.Stdout.Println(InvalidDateText)
		return
	}

	if !session.Submitted {
		return
	}

	notify.Stdout.Printf("=== Missions on %s ===\n", session.SelectedDate)
	if msg := session.MissionMessage(); msg != "" {
		notify.Stdout.Println(msg)
	}
	for i := range session.Launches {
		notify.Stdout.Println(launchToString(&session.Launches[i]))
	}

	if len(session.StatusCounts) > 0 {
		notify.Stdout.Println("Status from least to most common:")
		for _, statusCount := range session.StatusCounts {
			notify.Stdout.Printf("%6d - %s\n", statusCount.Count, statusCount.Property)
		}
	}

	notify.Stdout.Println("=== Hubble/NASA Image for this day ===")
	notify.printPicture(&session.Picture)

	notify.Stdout.Println("=== Launch Locations ===")
	if msg := session.MapMessage(); msg != "" {
		notify.Stdout.Println(msg)
	} else {
		for _, marker := range session.Map.Markers {
			notify.Stdout.Println(markerToString(&marker))
		}
		notify.Stdout.Printf("Map: %s\n", session.Map.URL())
	}

	if session.SummarySubject != "" {
		notify.Stdout.Printf("=== Mission Description: %s ===\n", session.SummarySubject)
		if session.SummaryWarning != "" {
			notify.Stdout.Println(session.SummaryWarning)
		} else {
			notify.Stdout.Println(session.Summary)
		}
	}
}

// PrintPicture prints only the picture-only lookup of a session.
func (notify *Notify) PrintPicture(session *Session) {
	if session.StandaloneInputErr != nil {
		notify.Stdout.Println(InvalidPictureDateText)
		return
	}

	notify.Stdout.Printf("=== Picture of %s ===\n", session.Standalone.Date)
	notify.printPicture(&session.Standalone)
}

func (notify *Notify) printPicture(slot *PictureSlot) {
	if msg := slot.Message(); msg != "" {
		notify.Stdout.Println(msg)
		return
	}

	notify.Stdout.Println(slot.Picture.GetTitleAsStr())
	notify.Stdout.Println(slot.Picture.URL)
	if hd := slot.Picture.HDURL; hd != "" && hd != slot.Picture.URL {
		notify.Stdout.Println("HD: " + hd)
	}
	if slot.Picture.Explanation != "" {
		notify.Stdout.Println(slot.Picture.Explanation)
	}
}

// EmitLaunchNotification sends one desktop notification naming the launches of the session.
// Sessions without launches do not notify.
func (notify *Notify) EmitLaunchNotification(session *Session) error {
	if !session.Submitted || len(session.Launches) == 0 {
		return nil
	}

	missions := make([]string, 0, maxNotifiedMissions)
	for i := range session.Launches {
		if i == maxNotifiedMissions {
			missions = append(missions, fmt.Sprintf("and %d more", len(session.Launches)-i))
			break
		}
		missions = append(missions, OrUnknown(session.Launches[i].Mission))
	}

	msgTitle := fmt.Sprintf("%d launches on %s", len(session.Launches), session.SelectedDate)
	if len(session.Launches) == 1 {
		msgTitle = fmt.Sprintf("1 launch on %s", session.SelectedDate)
	}

	if err := notify.notify(msgTitle, strings.Join(missions, "\n"), appIconPath); err != nil {
		return fmt.Errorf("emitLaunchNotification: %w", err)
	}

	return nil
}

// launchToString generates a one-liner consisting of the most relevant information about the
// given launch.
func launchToString(record *LaunchRecord) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		OrUnknown(record.Time),
		OrUnknown(record.Mission),
		OrUnknown(record.Company),
		OrUnknown(record.Rocket),
		record.GetStatusAsStr(),
		OrUnknown(record.Location))
}

func markerToString(marker *MapMarker) string {
	line := fmt.Sprintf("%s @ %s (%s)", OrUnknown(marker.Mission), OrUnknown(marker.Location), marker.Position)
	if marker.Direction != "" {
		line += fmt.Sprintf(" %5.0f km %s", marker.Distance, marker.Direction)
	}

	return line
}
