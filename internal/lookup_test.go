package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupRecords() []LaunchRecord {
	invalid := NewLaunchRecord(2000, 1, 1, "No Day")
	invalid.valid = false

	withDate := NewLaunchRecord(1999, 12, 31, "Date Column")
	withDate.Date = "2000-01-01"

	return []LaunchRecord{
		NewLaunchRecord(2000, 1, 1, "First"),
		NewLaunchRecord(2000, 1, 2, "Other Day"),
		invalid,
		NewLaunchRecord(2000, 1, 1, "Second"),
		withDate,
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		key      DateKey
		expected []string
	}{
		{
			name:     "matches in dataset order",
			key:      NewDateKey(2000, 1, 1),
			expected: []string{"First", "Second"},
		},
		{
			name:     "single match",
			key:      NewDateKey(2000, 1, 2),
			expected: []string{"Other Day"},
		},
		{
			name:     "no match is empty",
			key:      NewDateKey(1957, 10, 4),
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Lookup(lookupRecords(), test.key)
			require.NotNil(t, got)

			missions := make([]string, 0, len(got))
			for i := range got {
				missions = append(missions, got[i].Mission)
			}
			require.Equal(t, test.expected, missions)
		})
	}
}

func TestLookupSingleRow(t *testing.T) {
	records := []LaunchRecord{NewLaunchRecord(2000, 1, 1, "Mars Pathfinder")}

	got := Lookup(records, NewDateKey(2000, 1, 1))
	require.Len(t, got, 1)
	require.Equal(t, "Mars Pathfinder", got[0].Mission)

	require.Empty(t, Lookup(records, NewDateKey(2000, 1, 2)))
}

func TestLookupEmptyDataset(t *testing.T) {
	got := Lookup(nil, NewDateKey(2000, 1, 1))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLookupISO(t *testing.T) {
	tests := []struct {
		name     string
		isoDate  string
		expected []string
	}{
		{
			name:     "date column wins over the split columns",
			isoDate:  "2000-01-01",
			expected: []string{"First", "Second", "Date Column"},
		},
		{
			name:     "not zero padded matches nothing",
			isoDate:  "2000-1-1",
			expected: []string{},
		},
		{
			name:     "empty key matches nothing",
			isoDate:  "",
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := LookupISO(lookupRecords(), test.isoDate)

			missions := make([]string, 0, len(got))
			for i := range got {
				missions = append(missions, got[i].Mission)
			}
			require.Equal(t, test.expected, missions)
		})
	}
}

func TestDateKeyValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     DateKey
		isValid bool
	}{
		{name: "regular date", key: NewDateKey(2000, 1, 1), isValid: true},
		{name: "leap day", key: NewDateKey(2000, 2, 29), isValid: true},
		{name: "no leap day", key: NewDateKey(2001, 2, 29), isValid: false},
		{name: "february 30", key: NewDateKey(2001, 2, 30), isValid: false},
		{name: "month 13", key: NewDateKey(2001, 13, 1), isValid: false},
		{name: "day 0", key: NewDateKey(2001, 1, 0), isValid: false},
		{name: "zero key", key: DateKey{}, isValid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.key.Validate()
			if test.isValid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidDate)
			}
		})
	}
}

func TestParseDateKey(t *testing.T) {
	key, err := ParseDateKey(" 1969-07-16 ")
	require.NoError(t, err)
	require.Equal(t, NewDateKey(1969, 7, 16), key)
	require.Equal(t, "1969-07-16", key.ISO())

	_, err = ParseDateKey("2001-02-30")
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDateKey("yesterday")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestLaunchRecordISODate(t *testing.T) {
	record := NewLaunchRecord(957, 10, 4, "Sputnik-1")
	require.Equal(t, "0957-10-04", record.ISODate())

	record.valid = false
	require.Empty(t, record.ISODate())
	require.False(t, record.HasDate())
}
