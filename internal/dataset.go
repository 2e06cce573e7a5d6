package internal

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column names of the launch dataset. Matching is case-insensitive.
const (
	colYear          = "year"
	colMonth         = "month"
	colDay           = "day"
	colDate          = "date"
	colCompany       = "company"
	colMission       = "mission"
	colMissionStatus = "missionstatus"
	colRocket        = "rocket"
	colTime          = "time"
	colLocation      = "location"
	colLatitude      = "latitude"
	colLongitude     = "longitude"
	// utf8BOM is stripped from the first header, spreadsheet exports like to add it.
	utf8BOM = "\ufeff"
)

var (
	ErrNoSource      = errors.New("either file or url must be provided")
	ErrMissingColumn = errors.New("missing mandatory column")
)

// mandatoryColumns must be present in the header, everything else is optional.
var mandatoryColumns = []string{colYear, colMonth, colDay, colMission} //nolint:gochecknoglobals // constant list

// DatasetSource tells LoadDataset where to read the launch CSV from. FilePath wins over URL.
type DatasetSource struct {
	FilePath string
	URL      string
}

func (src DatasetSource) String() string {
	if src.FilePath != "" {
		return src.FilePath
	}

	return src.URL
}

// Dataset is the read-only launch table shared by all queries of a session.
type Dataset struct {
	Records []LaunchRecord
	Source  string
	// Skipped counts rows that can never match a date: rows the CSV reader rejected, which are
	// dropped, plus rows whose date fields could not be parsed, which stay in Records.
	Skipped int
}

// LoadDataset reads and parses the launch CSV once.
func LoadDataset(ctx context.Context, client *http.Client, src DatasetSource) (*Dataset, error) {
	reader, closer, err := openSource(ctx, client, src)
	if err != nil {
		return nil, fmt.Errorf("loadDataset: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	records, malformed, err := ParseLaunchCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("loadDataset: %s: %w", src, err)
	}

	skipped := malformed
	for i := range records {
		if !records[i].HasDate() {
			skipped++
		}
	}

	return &Dataset{
		Records: records,
		Source:  src.String(),
		Skipped: skipped,
	}, nil
}

// openSource returns a reader for either the local file or the downloaded body.
func openSource(ctx context.Context, client *http.Client, src DatasetSource) (io.Reader, io.Closer, error) {
	switch {
	case src.FilePath != "":
		file, fileErr := os.Open(src.FilePath)
		if fileErr != nil {
			return nil, nil, fmt.Errorf("openSource: failed to open file: %w", fileErr)
		}
		return file, file, nil
	case src.URL != "":
		body, _, fetchErr := fetch(ctx, client, src.URL, nil)
		if fetchErr != nil {
			return nil, nil, fmt.Errorf("openSource: %w", fetchErr)
		}
		rc := io.NopCloser(bytes.NewReader(body))
		return rc, rc, nil
	default:
		return nil, nil, ErrNoSource
	}
}

// ParseLaunchCSV parses launch records from CSV with a header row. Columns are looked up by name,
// so their order does not matter and unknown columns are ignored. Rows the CSV reader rejects are
// skipped and counted in malformed, only an unreadable header or an I/O failure is an error.
func ParseLaunchCSV(r io.Reader) ([]LaunchRecord, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	// mission names in the wild contain stray quotes, e.g. Kosmos 5"A
	reader.LazyQuotes = true

	// Read the header row
	headers, headerErr := reader.Read()
	if headerErr != nil {
		return nil, 0, fmt.Errorf("parseLaunchCSV: failed to read header: %w", headerErr)
	}

	columns := make(map[string]int, len(headers))
	for i, header := range headers {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, utf8BOM)))
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	for _, name := range mandatoryColumns {
		if _, ok := columns[name]; !ok {
			return nil, 0, fmt.Errorf("parseLaunchCSV: %w: %s", ErrMissingColumn, name)
		}
	}

	return readLaunchRows(reader, columns)
}

// readLaunchRows reads all rows after the header. A *csv.ParseError only affects its own row.
func readLaunchRows(reader *csv.Reader, columns map[string]int) ([]LaunchRecord, int, error) {
	records := make([]LaunchRecord, 0)
	malformed := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break // End of file
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			malformed++
			continue
		}

		if err != nil {
			return nil, 0, fmt.Errorf("parseLaunchCSV: failed to read record: %w", err)
		}

		records = append(records, rowToRecord(row, columns))
	}

	return records, malformed, nil
}

func rowToRecord(row []string, columns map[string]int) LaunchRecord {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	year, yearOk := parseInt(field(colYear))
	month, monthOk := parseInt(field(colMonth))
	day, dayOk := parseInt(field(colDay))

	return LaunchRecord{
		Year:          year,
		Month:         month,
		Day:           day,
		Date:          normalizeDate(field(colDate)),
		Company:       field(colCompany),
		Mission:       field(colMission),
		MissionStatus: field(colMissionStatus),
		Rocket:        field(colRocket),
		Time:          field(colTime),
		Location:      field(colLocation),
		Latitude:      parseFloat(field(colLatitude)),
		Longitude:     parseFloat(field(colLongitude)),
		valid:         yearOk && monthOk && dayOk,
	}
}

// parseInt accepts plain integers and integral floats, pandas writes "2000.0" for columns with gaps.
func parseInt(str string) (int, bool) {
	if str == "" {
		return 0, false
	}

	if num, err := strconv.Atoi(str); err == nil {
		return num, true
	}

	num, err := strconv.ParseFloat(str, 64)
	if err != nil || num != float64(int(num)) {
		return 0, false
	}

	return int(num), true
}

// parseFloat returns nil for empty, NaN or non-numeric coordinates.
func parseFloat(str string) *float64 {
	if str == "" {
		return nil
	}

	num, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return nil
	}

	return &num
}

// normalizeDate reduces a date column value to YYYY-MM-DD. Timestamps keep only their date part.
// Anything unparseable becomes the empty string, so that the Y/M/D columns are used instead.
func normalizeDate(str string) string {
	if len(str) < len(isoDateLayout) {
		return ""
	}

	candidate := str[:len(isoDateLayout)]
	if _, err := time.Parse(isoDateLayout, candidate); err != nil {
		return ""
	}

	return candidate
}
