package tuiapp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/launchday/internal"
)

const (
	// minInputYear is the earliest year the date inputs accept.
	minInputYear = 1900
	// resultsLeftShare is the share of the terminal width given to launches and picture.
	resultsLeftShare = 2.0 / 3.0
	// tableHeightMax caps both result tables.
	tableHeightMax = 10
	// statusSuccess is highlighted in the status breakdown.
	statusSuccess = "Success"
)

// Model implements the bubbletea.Model interface, which requires three methods:
// - Init() Cmd
// - Update(Msg) (Model, Cmd)
// - View() string
// This forms the base for the TUI app.
// All launch related state lives in session, which is replaced on every update and never mutated.
type model struct {
	width      int
	height     int
	baseStyle  lipgloss.Style
	viewStyle  lipgloss.Style
	theme      Theme
	tableStyle table.Styles
	inputs     []textinput.Model // year, month, day, picture date
	focus      focusTarget
	launchTbl  autoFormatTable
	markerTbl  autoFormatTable
	session    internal.Session
	fetcher    Fetcher
	now        func() time.Time
}

func newModel(fetcher Fetcher, theme Theme, defaultDate internal.DateKey) model {
	tableStyle := table.DefaultStyles()
	tableStyle.Selected = lipgloss.NewStyle().Background(theme.Highlight)

	year := newNumberInput("YYYY", 4, strconv.Itoa(defaultDate.Year))
	month := newNumberInput("MM", 2, strconv.Itoa(defaultDate.Month))
	day := newNumberInput("DD", 2, strconv.Itoa(defaultDate.Day))
	pictureDate := newNumberInput("YYYY-MM-DD", 10, defaultDate.ISO())

	m := model{
		width:      0,
		height:     0,
		baseStyle:  lipgloss.NewStyle(),
		viewStyle:  lipgloss.NewStyle(),
		theme:      theme,
		tableStyle: tableStyle,
		inputs:     []textinput.Model{year, month, day, pictureDate},
		focus:      focusYear,
		launchTbl:  newLaunchTable(tableStyle),
		markerTbl:  newMarkerTable(tableStyle),
		session:    internal.NewSession(),
		fetcher:    fetcher,
		now:        time.Now,
	}
	m.inputs[focusYear].Focus()

	return m
}

func newNumberInput(placeholder string, charLimit int, value string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = charLimit + 1
	input.SetValue(value)

	return input
}

// Init starts the cursor blinking, nothing is requested before the first submit.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update takes a tea.Msg as input and uses a type switch to handle different types of messages.
// Each case in the switch statement corresponds to a specific message type.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // required by interface
	switch thisMsg := msg.(type) {
	// message is sent when the window size changes
	// save to reflect the new dimensions of the terminal window.
	case tea.WindowSizeMsg:
		m.height = thisMsg.Height
		m.width = thisMsg.Width
		m.resizeTables()
		return m, nil

	// message is sent when a key is pressed.
	case tea.KeyMsg:
		switch thisMsg.String() {
		// Quits the program by returning the tea.Quit command.
		case "ctrl+c":
			return m, tea.Quit
		// 'q' is a valid keystroke inside the inputs, so it only quits from the table.
		case "q":
			if m.focus == focusLaunchTable {
				return m, tea.Quit
			}
		case "tab":
			return m, m.setFocus(m.focus.next())
		case "shift+tab":
			return m, m.setFocus(m.focus.prev())
		case "enter":
			return m, m.submit()
		// Moves the cursor in the launch table if the table is focused.
		case "up", "k":
			if m.focus == focusLaunchTable {
				m.launchTbl.table.MoveUp(1)
				return m, nil
			}
		case "down", "j":
			if m.focus == focusLaunchTable {
				m.launchTbl.table.MoveDown(1)
				return m, nil
			}
		}

		if m.focus < focusLaunchTable {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(thisMsg)
			return m, cmd
		}

	case PictureResponseMsg:
		m.applyPicture(thisMsg)
		return m, nil

	case SummaryResponseMsg:
		if thisMsg.err != nil {
			m.session = m.session.WithSummaryError(thisMsg.date, thisMsg.subject, thisMsg.err)
		} else {
			m.session = m.session.WithSummary(thisMsg.date, thisMsg.subject, thisMsg.summary)
		}
		return m, nil
	}

	// Forward everything else (e.g. cursor blinks) to the focused input.
	if m.focus < focusLaunchTable {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	// If the message type does not match any of the handled cases, the model is returned unchanged,
	// and no new command is issued.
	return m, nil
}

func (m *model) applyPicture(msg PictureResponseMsg) {
	switch msg.target {
	case launchPicture:
		if msg.err != nil {
			m.session = m.session.WithPictureError(msg.date, msg.err)
		} else {
			m.session = m.session.WithPicture(msg.date, msg.picture)
		}
	case standalonePicture:
		if msg.err != nil {
			m.session = m.session.WithStandalonePictureError(msg.date, msg.err)
		} else {
			m.session = m.session.WithStandalonePicture(msg.date, msg.picture)
		}
	}
}

// setFocus moves the focus and styles the launch table accordingly.
func (m *model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target

	var cmd tea.Cmd
	for i := range m.inputs {
		if focusTarget(i) == target {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}

	if target == focusLaunchTable {
		m.tableStyle.Selected = m.tableStyle.Selected.Background(m.theme.Highlight)
		m.launchTbl.table.SetStyles(m.tableStyle)
		m.launchTbl.table.Focus()
	} else {
		m.tableStyle.Selected = m.baseStyle
		m.launchTbl.table.SetStyles(m.tableStyle)
		m.launchTbl.table.Blur()
	}

	return cmd
}

// submit runs the lookup for the focused date and returns the fetch commands for it.
func (m *model) submit() tea.Cmd {
	if m.focus == focusPictureDate {
		key, err := internal.ParseDateKey(m.inputs[focusPictureDate].Value())
		if err != nil {
			key = internal.DateKey{} // rejected by the session, which shows the input error
		}

		m.session = m.session.SubmitPictureDate(key)
		if m.session.StandaloneInputErr != nil {
			return nil
		}

		return requestPictureCmd(m.fetcher, standalonePicture, key)
	}

	if !m.focus.isLaunchDate() {
		return nil
	}

	key := m.dateInputKey()
	m.session = m.fetcher.Submit(m.session, key)
	m.refreshTables()

	if m.session.InputErr != nil {
		return nil
	}

	cmds := []tea.Cmd{requestPictureCmd(m.fetcher, launchPicture, key)}
	if m.session.SummarySubject != "" {
		cmds = append(cmds, requestSummaryCmd(m.fetcher, key, m.session.SummarySubject))
	}

	return tea.Batch(cmds...)
}

// dateInputKey reads year, month and day from the inputs. Anything unparseable or a year outside
// of [minInputYear, current year] yields the zero key, which fails validation.
func (m *model) dateInputKey() internal.DateKey {
	var parts [dateInputCount]int
	for i := 0; i < dateInputCount; i++ {
		num, err := strconv.Atoi(strings.TrimSpace(m.inputs[i].Value()))
		if err != nil {
			return internal.DateKey{}
		}
		parts[i] = num
	}

	if parts[focusYear] < minInputYear || parts[focusYear] > m.now().Year() {
		return internal.DateKey{}
	}

	return internal.NewDateKey(parts[focusYear], parts[focusMonth], parts[focusDay])
}

func (m *model) refreshTables() {
	launchRows := make([]table.Row, 0, len(m.session.Launches))
	for i := range m.session.Launches {
		launchRows = append(launchRows, launchToRow(&m.session.Launches[i]))
	}
	m.launchTbl.table.SetRows(launchRows)
	m.launchTbl.table.GotoTop()
	m.launchTbl.SetHeight(min(len(launchRows)+1, tableHeightMax))

	markerRows := make([]table.Row, 0, len(m.session.Map.Markers))
	for i := range m.session.Map.Markers {
		markerRows = append(markerRows, markerToRow(&m.session.Map.Markers[i]))
	}
	m.markerTbl.table.SetRows(markerRows)
	m.markerTbl.SetHeight(min(len(markerRows)+1, tableHeightMax))
}

func (m *model) resizeTables() {
	leftWidth, rightWidth := m.columnWidths()
	// Both tables use the same formats as created, a mismatch is a programming error.
	if err := m.launchTbl.resize(leftWidth); err != nil {
		panic(err)
	}
	if err := m.markerTbl.resize(rightWidth); err != nil {
		panic(err)
	}
}

func (m *model) columnWidths() (int, int) {
	leftWidth := int(float64(m.width) * resultsLeftShare)
	return leftWidth, m.width - leftWidth
}

func (m *model) View() string {
	// Sets the width of the column to the width of the terminal (m.width) and adds padding of 1 unit
	// on the top.
	column := m.baseStyle.Width(m.width).Padding(1, 0, 0, 0).Render
	// Set the content to match the terminal dimensions (m.width and m.height).
	content := m.baseStyle.
		Width(m.width).
		Height(m.height).
		Render(
			// Vertically join multiple elements aligned to the left.
			lipgloss.JoinVertical(lipgloss.Left,
				column(m.viewHeader()),
				column(m.viewInputs()),
				column(m.viewResults()),
				column(m.viewStandalonePicture()),
				column(m.viewHelp()),
			),
		)

	return content
}

func (m *model) viewHeader() string {
	return m.baseStyle.Bold(true).Foreground(m.theme.Primary).Render("🚀 Space Missions & Hubble Image")
}

// viewInputs renders the date inputs and any input error below them.
func (m *model) viewInputs() string {
	label := m.baseStyle.Foreground(m.theme.Secondary).Render
	box := func(target focusTarget) string {
		border := m.theme.Border
		if m.focus == target {
			border = m.theme.Highlight
		}
		return m.baseStyle.
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(m.inputs[target].View())
	}

	inputs := lipgloss.JoinHorizontal(lipgloss.Center,
		label("🎂 Year "), box(focusYear),
		label(" Month "), box(focusMonth),
		label(" Day "), box(focusDay),
		label("   🌌 Picture only "), box(focusPictureDate),
	)

	lines := []string{inputs}
	if m.session.InputErr != nil {
		lines = append(lines, m.warning(internal.InvalidDateText))
	}
	if m.session.StandaloneInputErr != nil {
		lines = append(lines, m.warning(internal.InvalidPictureDateText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *model) viewResults() string {
	if !m.session.Submitted {
		return ""
	}

	leftWidth, rightWidth := m.columnWidths()
	subheader := m.baseStyle.Bold(true).Render

	left := []string{subheader(fmt.Sprintf("🚀 Missions on %s", m.session.SelectedDate))}
	if msg := m.session.MissionMessage(); msg != "" {
		left = append(left, m.warning("⚠️ "+msg))
	} else {
		left = append(left, m.viewStyle.Render(m.launchTbl.table.View()), m.viewStatusCounts())
	}
	left = append(left,
		subheader("🌌 Hubble/NASA Image for this day"),
		m.viewPicture(&m.session.Picture, leftWidth))

	right := []string{subheader("🗺️ Launch Locations")}
	if msg := m.session.MapMessage(); msg != "" {
		right = append(right, m.info(msg))
	} else {
		right = append(right,
			m.viewStyle.Render(m.markerTbl.table.View()),
			m.info("Map: "+m.session.Map.URL()),
			m.viewSummary(rightWidth))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.baseStyle.Width(leftWidth).Render(lipgloss.JoinVertical(lipgloss.Left, left...)),
		m.baseStyle.Width(rightWidth).Render(lipgloss.JoinVertical(lipgloss.Left, right...)),
	)
}

func (m *model) viewStatusCounts() string {
	parts := make([]string, 0, len(m.session.StatusCounts))
	for _, statusCount := range m.session.StatusCounts {
		part := fmt.Sprintf("%s: %d", statusCount.Property, statusCount.Count)
		if strings.EqualFold(statusCount.Property, statusSuccess) {
			part = m.baseStyle.Foreground(m.theme.Green).Render(part)
		}
		parts = append(parts, part)
	}

	return m.info(strings.Join(parts, "  "))
}

func (m *model) viewPicture(slot *internal.PictureSlot, width int) string {
	if msg := slot.Message(); msg != "" {
		if slot.Pending {
			return m.info(msg)
		}
		return m.warning("⚠️ " + msg)
	}

	picture := &slot.Picture
	lines := []string{m.baseStyle.Bold(true).Render(picture.GetTitleAsStr())}
	if picture.IsImage() {
		lines = append(lines, m.info(picture.URL))
	} else {
		lines = append(lines, m.info("video: "+picture.URL))
	}
	if picture.HDURL != "" && picture.HDURL != picture.URL {
		lines = append(lines, m.info("HD: "+picture.HDURL))
	}
	if picture.Copyright != "" {
		lines = append(lines, m.info("© "+strings.TrimSpace(picture.Copyright)))
	}
	if picture.Explanation != "" {
		lines = append(lines, m.baseStyle.Width(max(width-1, 1)).Render(picture.Explanation))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *model) viewSummary(width int) string {
	switch {
	case m.session.SummarySubject == "":
		return ""
	case m.session.SummaryPending:
		return m.info("Loading mission description...")
	case m.session.SummaryWarning != "":
		return m.warning("⚠️ " + m.session.SummaryWarning)
	}

	return m.baseStyle.Width(max(width-1, 1)).Render(
		m.baseStyle.Bold(true).Render("Mission Description: ") + m.session.Summary)
}

func (m *model) viewStandalonePicture() string {
	if !m.session.Standalone.Requested {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.baseStyle.Bold(true).Render(fmt.Sprintf("🌌 Picture of %s", m.session.Standalone.Date)),
		m.viewPicture(&m.session.Standalone, m.width))
}

func (m *model) viewHelp() string {
	return m.baseStyle.Foreground(m.theme.Secondary).Render(
		"tab/shift+tab: switch field • enter: submit • ↑/↓: scroll launches • q: quit from table • ctrl+c: quit")
}

func (m *model) warning(text string) string {
	return m.baseStyle.Foreground(m.theme.Red).Render(text)
}

func (m *model) info(text string) string {
	return m.baseStyle.Foreground(m.theme.Secondary).Render(text)
}
