package internal

// Lookup returns all records launched on the given date, in dataset order.
// Records with unusable date fields never match. No match is not an error; the result is empty.
func Lookup(records []LaunchRecord, key DateKey) []LaunchRecord {
	matches := make([]LaunchRecord, 0)

	for i := range records {
		record := &records[i]
		if !record.HasDate() {
			continue
		}

		if record.Year == key.Year && record.Month == key.Month && record.Day == key.Day {
			matches = append(matches, *record)
		}
	}

	return matches
}

// LookupISO is the string keyed variant of Lookup. A record matches if its normalized date equals
// isoDate exactly, so "2000-1-1" matches nothing.
func LookupISO(records []LaunchRecord, isoDate string) []LaunchRecord {
	matches := make([]LaunchRecord, 0)
	if isoDate == "" {
		return matches
	}

	for i := range records {
		if records[i].ISODate() == isoDate {
			matches = append(matches, records[i])
		}
	}

	return matches
}
