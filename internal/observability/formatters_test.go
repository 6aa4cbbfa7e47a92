package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/jobtracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	view := types.DerivedView{
		Jobs: []types.Job{
			{ID: 2, Title: "Backend Engineer", Company: "Global Systems", Location: "Remote", Type: types.JobTypeContract, Salary: "$80 - $100 per hour"},
			{ID: 8, Title: "QA Engineer", Company: "Quality Tech", Location: "Denver", Type: types.JobTypeContract, Salary: "$70 - $90 per hour"},
		},
		Count:   2,
		Applied: true,
		Query:   types.Query{Search: "engineer", Sort: types.SortTitle},
	}

	p.PrintJobs(view)
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYTICS (2)")
	assert.Contains(t, output, `search="engineer"`)
	assert.Contains(t, output, "sort=title")
	assert.Contains(t, output, "#2  Backend Engineer")
	assert.Contains(t, output, "[Denver] [Contract]")
	assert.Less(t, strings.Index(output, "Backend"), strings.Index(output, "QA Engineer"))
}

func TestPrintJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobs(types.DerivedView{Jobs: []types.Job{}, Applied: true, Query: types.Query{Search: "zzz"}})

	assert.Contains(t, buf.String(), "No jobs match your criteria")
}

func TestPrintJobs_NoQueryOmitsFilters(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobs(types.DerivedView{Jobs: []types.Job{{ID: 1, Title: "T"}}, Count: 1})

	assert.NotContains(t, buf.String(), "Filters:")
}

func TestPrintResumeForm(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeForm(
		types.UploadedFile{Name: "cv.pdf", Size: 1234},
		types.ResumeForm{Name: "John Doe", Skills: "Go"},
	)
	output := buf.String()

	assert.Contains(t, output, "PARSED INFORMATION")
	assert.Contains(t, output, "cv.pdf (1234 bytes)")
	assert.Contains(t, output, "Name:       John Doe")
	assert.Contains(t, output, "Skills:     Go")
}

func TestPrintLoginResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLoginResult(types.LoginResult{Valid: true})
	assert.Contains(t, buf.String(), "Login successful!")

	buf.Reset()
	msg := "Email is invalid"
	p.PrintLoginResult(types.LoginResult{EmailError: &msg})
	assert.Contains(t, buf.String(), "LOGIN FAILED")
	assert.Contains(t, buf.String(), "Email:    Email is invalid")
	assert.NotContains(t, buf.String(), "Password:")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
