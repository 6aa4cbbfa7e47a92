// Package joblist filters and sorts the job catalog for the dashboard.
//
// Every function here is pure: the source slice is never modified and each
// call recomputes its result from the full collection.
package joblist

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jonathan/jobtracker/internal/types"
)

// Apply returns the jobs matching q, in source order unless q asks for a sort.
// An unknown sort key leaves the order untouched.
func Apply(records []types.Job, q types.Query) []types.Job {
	search := strings.ToLower(q.Search)
	location := strings.ToLower(q.Location)

	result := make([]types.Job, 0, len(records))
	for _, job := range records {
		if search != "" && !containsFold(job.Title, search) && !containsFold(job.Company, search) {
			continue
		}
		if location != "" && !containsFold(job.Location, location) {
			continue
		}
		result = append(result, job)
	}

	key := sortField(types.ParseSortKey(string(q.Sort)))
	if key == nil || len(result) < 2 {
		return result
	}

	// Collators keep internal buffers, so each call gets its own.
	c := collate.New(language.English)
	slices.SortStableFunc(result, func(a, b types.Job) int {
		return c.CompareString(key(a), key(b))
	})
	return result
}

// View applies q and wraps the result for presentation.
func View(records []types.Job, q types.Query) types.DerivedView {
	jobs := Apply(records, q)
	return types.DerivedView{
		Jobs:    jobs,
		Count:   len(jobs),
		Applied: !q.IsZero(),
		Query:   q,
	}
}

// Find looks up a job by id.
func Find(records []types.Job, id int) (types.Job, bool) {
	i := slices.IndexFunc(records, func(j types.Job) bool { return j.ID == id })
	if i < 0 {
		return types.Job{}, false
	}
	return records[i], true
}

// containsFold expects needle to be lower-cased already.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func sortField(k types.SortKey) func(types.Job) string {
	switch k {
	case types.SortTitle:
		return func(j types.Job) string { return j.Title }
	case types.SortLocation:
		return func(j types.Job) string { return j.Location }
	case types.SortCompany:
		return func(j types.Job) string { return j.Company }
	default:
		return nil
	}
}
