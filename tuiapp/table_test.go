package tuiapp

import (
	"errors"
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/micutio/launchday/internal"
)

func TestTableFormat(t *testing.T) {
	tests := []struct {
		name                       string
		format                     tableFormat
		expectedFixedWidth         int
		expectedFillWidthCount     int
		expectedTotalRelativeWidth float32
	}{
		{
			name:                       "empty",
			format:                     newTableFormat(),
			expectedFixedWidth:         0,
			expectedFillWidthCount:     0,
			expectedTotalRelativeWidth: 0.0,
		},
		{
			name:                       "launchTable",
			format:                     newLaunchTable(table.DefaultStyles()).format,
			expectedFixedWidth:         22,
			expectedFillWidthCount:     4,
			expectedTotalRelativeWidth: 0.0,
		},
		{
			name:                       "markerTable",
			format:                     newMarkerTable(table.DefaultStyles()).format,
			expectedFixedWidth:         11,
			expectedFillWidthCount:     2,
			expectedTotalRelativeWidth: 0.0,
		},
		{
			name: "mixed",
			format: newTableFormat(
				columnFormat{relative, 0.25},
				columnFormat{fixed, 8},
				columnFormat{fill, 0},
				columnFormat{relative, 0.25},
			),
			expectedFixedWidth:         8,
			expectedFillWidthCount:     1,
			expectedTotalRelativeWidth: 0.5,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.expectedFixedWidth != test.format.fixedWidth {
				t.Errorf("fixedWidth -> expected: %d, got: %d", test.expectedFixedWidth, test.format.fixedWidth)
			}

			if test.expectedFillWidthCount != test.format.fillWidthCount {
				t.Errorf("fillWidthCount -> expected: %d, got: %d", test.expectedFillWidthCount, test.format.fillWidthCount)
			}

			if test.expectedTotalRelativeWidth != test.format.totalRelativeWidth {
				t.Errorf("totalRelativeWidth -> expected: %f, got: %f",
					test.expectedTotalRelativeWidth,
					test.format.totalRelativeWidth)
			}
		})
	}
}

func TestColumnWidthsMixed(t *testing.T) {
	format := newTableFormat(
		columnFormat{relative, 0.25},
		columnFormat{fixed, 8},
		columnFormat{fill, 0},
		columnFormat{relative, 0.25},
	)

	// 88 available after padding, 22 per relative column, 88-44-8 for the fill column
	expected := []int{22, 8, 36, 22}
	if got := format.columnWidths(96); !reflect.DeepEqual(got, expected) {
		t.Errorf("columnWidths(96) = %v, want %v", got, expected)
	}

	if got := format.columnWidths(0); !reflect.DeepEqual(got, []int{0, 8, minFillWidth, 0}) {
		t.Errorf("columnWidths(0) = %v", got)
	}
}

func TestAutoFormatTableResize(t *testing.T) {
	tests := []struct {
		name                            string
		tableModel                      table.Model
		tableFormat                     tableFormat
		resizeWidth                     int
		expectedTableWidthAfterResize   int
		expectedColumnWidthsAfterResize []int
	}{
		{
			name: "SingleColumnFixed",
			tableModel: table.New(
				table.WithColumns(
					[]table.Column{
						{Title: "A", Width: 10},
					},
				),
			),
			tableFormat: newTableFormat(
				columnFormat{fixed, 10.0},
			),
			resizeWidth:                     20,
			expectedTableWidthAfterResize:   20,
			expectedColumnWidthsAfterResize: []int{10},
		},
		{
			name: "SingleColumnRelative",
			tableModel: table.New(
				table.WithColumns(
					[]table.Column{
						{Title: "A", Width: 5},
					},
				),
			),
			tableFormat: newTableFormat(
				columnFormat{relative, .5},
			),
			resizeWidth:                     40,
			expectedTableWidthAfterResize:   40,
			expectedColumnWidthsAfterResize: []int{19},
		},
		{
			name: "SingleColumnFill",
			tableModel: table.New(
				table.WithColumns(
					[]table.Column{
						{Title: "A", Width: 10},
					},
				),
			),
			tableFormat: newTableFormat(
				columnFormat{fill, .0},
			),
			resizeWidth:                     15,
			expectedTableWidthAfterResize:   15,
			expectedColumnWidthsAfterResize: []int{13},
		},
		{
			name:                            "LaunchTable",
			tableModel:                      newLaunchTable(table.DefaultStyles()).table,
			tableFormat:                     newLaunchTable(table.DefaultStyles()).format,
			resizeWidth:                     100,
			expectedTableWidthAfterResize:   100,
			expectedColumnWidthsAfterResize: []int{8, 16, 16, 16, 14, 16},
		},
		{
			name:                            "LaunchTableNarrow",
			tableModel:                      newLaunchTable(table.DefaultStyles()).table,
			tableFormat:                     newLaunchTable(table.DefaultStyles()).format,
			resizeWidth:                     20,
			expectedTableWidthAfterResize:   20,
			expectedColumnWidthsAfterResize: []int{8, 4, 4, 4, 14, 4},
		},
		{
			name:                            "MarkerTable",
			tableModel:                      newMarkerTable(table.DefaultStyles()).table,
			tableFormat:                     newMarkerTable(table.DefaultStyles()).format,
			resizeWidth:                     53,
			expectedTableWidthAfterResize:   53,
			expectedColumnWidthsAfterResize: []int{17, 17, 7, 4},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			aft := autoFormatTable{
				table:  test.tableModel,
				format: test.tableFormat,
			}

			err := aft.resize(test.resizeWidth)
			if err != nil {
				t.Errorf(
					"resize(%d) failed: %v",
					test.resizeWidth,
					err)
			}

			if aft.table.Width() != test.expectedTableWidthAfterResize {
				t.Errorf(
					"resized table width -> expected: %d, got: %d",
					test.expectedTableWidthAfterResize,
					aft.table.Width())
			}

			columns := aft.table.Columns()
			if len(columns) != len(test.expectedColumnWidthsAfterResize) {
				t.Fatalf("expected %d columns, got %d", len(test.expectedColumnWidthsAfterResize), len(columns))
			}

			for i, col := range columns {
				if col.Width != test.expectedColumnWidthsAfterResize[i] {
					t.Errorf(
						"resized table col '%s' width -> expected: %d, got: %d",
						col.Title,
						test.expectedColumnWidthsAfterResize[i],
						col.Width)
				}

				if col.Title != test.tableModel.Columns()[i].Title {
					t.Errorf("column title changed from '%s' to '%s'", test.tableModel.Columns()[i].Title, col.Title)
				}
			}
		})
	}
}

func TestAutoFormatTableColumnMismatch(t *testing.T) {
	aft := autoFormatTable{
		table: table.New(table.WithColumns([]table.Column{
			{Title: "A", Width: 1},
			{Title: "B", Width: 1},
		})),
		format: newTableFormat(columnFormat{fill, 0}),
	}

	if err := aft.resize(40); !errors.Is(err, errColumnMismatch) {
		t.Errorf("expected errColumnMismatch, got %v", err)
	}
}

func TestLaunchToRow(t *testing.T) {
	record := internal.NewLaunchRecord(1969, 7, 16, "Apollo 11")
	record.Company = "NASA"
	record.Rocket = "Saturn V"

	expected := table.Row{"n/a", "Apollo 11", "NASA", "Saturn V", "unknown", "n/a"}
	if got := launchToRow(&record); !reflect.DeepEqual(got, expected) {
		t.Errorf("launchToRow() = %v, want %v", got, expected)
	}

	// whitespace-only columns read the same as in the printed report
	record.Company = "   "
	record.Location = "\t"
	expected = table.Row{"n/a", "Apollo 11", "n/a", "Saturn V", "unknown", "n/a"}
	if got := launchToRow(&record); !reflect.DeepEqual(got, expected) {
		t.Errorf("launchToRow() = %v, want %v", got, expected)
	}
}

func TestMarkerToRow(t *testing.T) {
	tests := []struct {
		name     string
		marker   internal.MapMarker
		expected table.Row
	}{
		{
			name:     "without observer",
			marker:   internal.MapMarker{Mission: "Luna 15", Location: "Baikonur"},
			expected: table.Row{"Luna 15", "Baikonur", "n/a", "n/a"},
		},
		{
			name:     "with observer",
			marker:   internal.MapMarker{Mission: "Luna 15", Distance: 2571.4, Direction: "ESE"},
			expected: table.Row{"Luna 15", "n/a", " 2571", "ESE"},
		},
		{
			name:     "blank location",
			marker:   internal.MapMarker{Mission: "Luna 15", Location: " "},
			expected: table.Row{"Luna 15", "n/a", "n/a", "n/a"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := markerToRow(&test.marker); !reflect.DeepEqual(got, test.expected) {
				t.Errorf("markerToRow() = %v, want %v", got, test.expected)
			}
		})
	}
}
