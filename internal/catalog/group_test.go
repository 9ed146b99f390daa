package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"schemaindex/internal/config"
)

func TestGroupByStatus(t *testing.T) {
	render := config.DefaultConfig().Render

	records := Sort([]Record{
		{RelPath: "d1", Title: "Draft One", Status: "draft"},
		{RelPath: "s2", Title: "Stable Two", Status: "stable"},
		{RelPath: "x", Title: "Experimental", Status: "experimental"},
		{RelPath: "s1", Title: "Stable One", Status: "stable"},
		{RelPath: "b", Title: "Beta", Status: "beta"},
	})

	groups := GroupByStatus(records, render.GroupOrder, render.StatusLabels)

	want := []Group{
		{Status: "stable", Label: "Stable", Records: []Record{
			{RelPath: "s1", Title: "Stable One", Status: "stable"},
			{RelPath: "s2", Title: "Stable Two", Status: "stable"},
		}},
		{Status: "draft", Label: "Draft", Records: []Record{
			{RelPath: "d1", Title: "Draft One", Status: "draft"},
		}},
		{Status: "beta", Label: "Beta", Records: []Record{
			{RelPath: "b", Title: "Beta", Status: "beta"},
		}},
		{Status: "experimental", Label: "Experimental", Records: []Record{
			{RelPath: "x", Title: "Experimental", Status: "experimental"},
		}},
	}

	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByStatus_OmitsEmptyGroups(t *testing.T) {
	render := config.DefaultConfig().Render

	groups := GroupByStatus([]Record{{Title: "Only", Status: "draft"}}, render.GroupOrder, render.StatusLabels)
	assert.Len(t, groups, 1)
	assert.Equal(t, "Draft", groups[0].Label)

	assert.Empty(t, GroupByStatus(nil, render.GroupOrder, render.StatusLabels))
}

func TestGroupByStatus_DuplicateOrderEntries(t *testing.T) {
	groups := GroupByStatus(
		[]Record{{Title: "A", Status: "stable"}},
		[]string{"stable", "stable"},
		nil,
	)
	assert.Len(t, groups, 1)
	assert.Equal(t, "Stable", groups[0].Label)
}

func TestStatusLabel(t *testing.T) {
	labels := map[string]string{"rc": "Release Candidate", "empty": ""}

	assert.Equal(t, "Release Candidate", statusLabel("rc", labels))
	assert.Equal(t, "Empty", statusLabel("empty", labels))
	assert.Equal(t, "Ädded", statusLabel("ädded", labels))
	assert.Equal(t, "", statusLabel("", labels))
}
