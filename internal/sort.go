package internal

import "sort"

type PropertyCountTuple struct {
	Property string
	Count    int
}

// ByCount sorts by count, ties are broken by property so that the order is deterministic.
type ByCount []PropertyCountTuple

func (a ByCount) Len() int { return len(a) }
func (a ByCount) Less(i, j int) bool {
	if a[i].Count == a[j].Count {
		return a[i].Property < a[j].Property
	}
	return a[i].Count < a[j].Count
}
func (a ByCount) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func GetSortedCountsForProperty(propertyCountMap map[string]int) []PropertyCountTuple {
	propertyCounts := make([]PropertyCountTuple, len(propertyCountMap))
	i := 0
	for key, value := range propertyCountMap {
		propertyCounts[i] = PropertyCountTuple{Property: key, Count: value}
		i++
	}

	sort.Sort(ByCount(propertyCounts))
	return propertyCounts
}

// CountByStatus tallies the mission status of the given records, rarest status first.
func CountByStatus(records []LaunchRecord) []PropertyCountTuple {
	statusCount := make(map[string]int)
	for i := range records {
		statusCount[records[i].GetStatusAsStr()]++
	}

	return GetSortedCountsForProperty(statusCount)
}
