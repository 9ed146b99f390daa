package catalog

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Group is a labeled bucket of records sharing a status.
type Group struct {
	Status  string
	Label   string
	Records []Record
}

// GroupByStatus partitions sorted records by status. Statuses listed in order
// come first, the rest follow lexically. Empty groups are omitted and each
// group keeps the input order of its records.
func GroupByStatus(records []Record, order []string, labels map[string]string) []Group {
	buckets := make(map[string][]Record)
	for _, r := range records {
		buckets[r.Status] = append(buckets[r.Status], r)
	}

	var groups []Group
	emit := func(status string) {
		recs, ok := buckets[status]
		if !ok {
			return
		}
		delete(buckets, status)
		groups = append(groups, Group{
			Status:  status,
			Label:   statusLabel(status, labels),
			Records: recs,
		})
	}

	for _, status := range order {
		emit(status)
	}

	rest := make([]string, 0, len(buckets))
	for status := range buckets {
		rest = append(rest, status)
	}
	sort.Strings(rest)
	for _, status := range rest {
		emit(status)
	}

	return groups
}

func statusLabel(status string, labels map[string]string) string {
	if label, ok := labels[status]; ok && label != "" {
		return label
	}
	r, size := utf8.DecodeRuneInString(status)
	if r == utf8.RuneError {
		return status
	}
	return string(unicode.ToUpper(r)) + status[size:]
}
