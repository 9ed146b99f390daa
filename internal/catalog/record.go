package catalog

// StatusStable is the status that sorts and groups first.
const StatusStable = "stable"

// Record is the metadata extracted from one schema file.
type Record struct {
	// RelPath is the slash-separated path relative to the scan root.
	RelPath string
	// HTMLPath is RelPath with the schema suffix swapped for the HTML suffix.
	HTMLPath    string
	Title       string
	Status      string
	Description string
}

// rank puts stable records ahead of everything else.
func (r Record) rank() int {
	if r.Status == StatusStable {
		return 0
	}
	return 1
}
