package tuiapp

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/micutio/launchday/internal"
)

// Error types

var errColumnMismatch = errors.New("number of columns does not match number of format columns")

const (
	// cellPadding is the horizontal padding the default table styles add to every cell.
	cellPadding = 2
	// minFillWidth keeps fill columns readable on narrow terminals.
	minFillWidth = 4
)

// Automated Table Formatting

type tableColumnSizingOption int

const (
	// fixed column width, regardless of table width.
	fixed tableColumnSizingOption = iota
	// relative column with, given as fraction of the available table width.
	relative
	// fill columns receive any remaining table space, evenly distributed.
	fill
)

type columnFormat struct {
	option tableColumnSizingOption
	value  float32
}

type tableFormat struct {
	columnSizes        []columnFormat
	fixedWidth         int     // fixedWidth is the total space taken up by all fixed-width columns.
	fillWidthCount     int     // fillWidthCount indicates how many columns have fill width.
	totalRelativeWidth float32 // how much width is taken by relative columns.
}

func newTableFormat(items ...columnFormat) tableFormat {
	var totalRelativeWidth float32
	fixedWidth := 0
	fillWidthCount := 0

	for _, item := range items {
		switch item.option {
		case relative:
			totalRelativeWidth += item.value
		case fixed:
			fixedWidth += int(item.value)
		case fill:
			fillWidthCount++
		}
	}

	return tableFormat{
		columnSizes:        items,
		fixedWidth:         fixedWidth,
		fillWidthCount:     fillWidthCount,
		totalRelativeWidth: totalRelativeWidth,
	}
}

// columnWidths distributes newWidth over the columns. Cell padding is subtracted first.
func (format *tableFormat) columnWidths(newWidth int) []int {
	available := max(newWidth-cellPadding*len(format.columnSizes), 0)
	relativeWidth := int(float32(available) * format.totalRelativeWidth)

	fillPerColumn := 0
	if format.fillWidthCount > 0 {
		fillPerColumn = max((available-relativeWidth-format.fixedWidth)/format.fillWidthCount, minFillWidth)
	}

	widths := make([]int, len(format.columnSizes))
	for idx, size := range format.columnSizes {
		switch size.option {
		case fixed:
			widths[idx] = int(size.value)
		case relative:
			widths[idx] = int(size.value * float32(available))
		case fill:
			widths[idx] = fillPerColumn
		}
	}

	return widths
}

// Integrated Formatted Table Type

type autoFormatTable struct {
	table  table.Model
	format tableFormat
}

func (aft *autoFormatTable) resize(newWidth int) error {
	columns := aft.table.Columns()
	if len(columns) != len(aft.format.columnSizes) {
		return fmt.Errorf(
			"table.resize: %w -> %d in table, %d in tableFormat",
			errColumnMismatch,
			len(columns),
			len(aft.format.columnSizes))
	}

	resized := make([]table.Column, len(columns))
	for idx, width := range aft.format.columnWidths(newWidth) {
		resized[idx] = table.Column{Title: columns[idx].Title, Width: width}
	}

	aft.table.SetColumns(resized)
	aft.table.SetWidth(newWidth)

	return nil
}

func (aft *autoFormatTable) SetHeight(height int) {
	aft.table.SetHeight(height)
}

func newLaunchTable(tableStyle table.Styles) autoFormatTable {
	timeLen := 8
	statusLen := 14
	initialTableHeight := 5
	format := newTableFormat(
		columnFormat{fixed, float32(timeLen)},
		columnFormat{fill, 0.0},
		columnFormat{fill, 0.0},
		columnFormat{fill, 0.0},
		columnFormat{fixed, float32(statusLen)},
		columnFormat{fill, 0.0},
	)

	launchTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "Time", Width: timeLen},
				{Title: "Mission", Width: 0},
				{Title: "Company", Width: 0},
				{Title: "Rocket", Width: 0},
				{Title: "Status", Width: statusLen},
				{Title: "Location", Width: 0},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  launchTbl,
		format: format,
	}
}

func newMarkerTable(tableStyle table.Styles) autoFormatTable {
	dstLen := 7
	dirLen := 4
	initialTableHeight := 5
	format := newTableFormat(
		columnFormat{fill, 0.0},
		columnFormat{fill, 0.0},
		columnFormat{fixed, float32(dstLen)},
		columnFormat{fixed, float32(dirLen)},
	)

	markerTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "Mission", Width: 0},
				{Title: "Location", Width: 0},
				{Title: "DST", Width: dstLen},
				{Title: "DIR", Width: dirLen},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  markerTbl,
		format: format,
	}
}

func launchToRow(record *internal.LaunchRecord) table.Row {
	return table.Row{
		internal.OrUnknown(record.Time),
		internal.OrUnknown(record.Mission),
		internal.OrUnknown(record.Company),
		internal.OrUnknown(record.Rocket),
		record.GetStatusAsStr(),
		internal.OrUnknown(record.Location),
	}
}

func markerToRow(marker *internal.MapMarker) table.Row {
	distance := "n/a"
	direction := "n/a"
	if marker.Direction != "" {
		distance = fmt.Sprintf("%5.0f", marker.Distance)
		direction = marker.Direction
	}

	return table.Row{internal.OrUnknown(marker.Mission), internal.OrUnknown(marker.Location), distance, direction}
}
