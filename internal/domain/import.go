package domain

import (
	"context"
	"io"
)

// Spreadsheet column headers. Matching is exact and case-sensitive.
const (
	HeaderStudentID         = "Student ID"
	HeaderStudentNumber     = "Student Number"
	HeaderFirstName         = "First Name"
	HeaderLastName          = "Last Name"
	HeaderMiddleName        = "Middle Name"
	HeaderEmail             = "Email"
	HeaderPhone             = "Phone"
	HeaderCollegeDepartment = "College Department"
	HeaderCourse            = "Course"
	HeaderYearLevel         = "Year Level"
	HeaderSection           = "Section"
)

// SheetRecord is one data row. Row is its 1-based row number in the sheet,
// header included; zero when the parser cannot tell.
type SheetRecord struct {
	Row   int
	Cells map[string]string
}

// SheetParser reads the first sheet of a spreadsheet upload. filename selects the format.
type SheetParser interface {
	Parse(filename string, r io.Reader) ([]SheetRecord, error)
}

// ImportRowStatus is the outcome of a single imported row.
type ImportRowStatus string

const (
	// ImportCreated: a new profile was created and the participant added.
	ImportCreated ImportRowStatus = "created"
	// ImportLinked: an existing profile was reused and the participant added.
	ImportLinked ImportRowStatus = "linked"
	// ImportSkipped: already a participant (or profile, for profile imports), or repeated in the file.
	ImportSkipped ImportRowStatus = "skipped"
	// ImportDropped: missing a required column.
	ImportDropped ImportRowStatus = "dropped"
	ImportFailed  ImportRowStatus = "failed"
)

// ImportRowResult reports what happened to one spreadsheet row. Row is 1-based and counts the header.
type ImportRowResult struct {
	Row       int             `json:"row"`
	IDNumber  string          `json:"id_number"`
	Status    ImportRowStatus `json:"status"`
	ProfileID string          `json:"profile_id,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

// ImportReport summarizes a bulk import.
// swagger:model ImportReport
type ImportReport struct {
	Total   int               `json:"total"`
	Created int               `json:"created"`
	Linked  int               `json:"linked"`
	Skipped int               `json:"skipped"`
	Dropped int               `json:"dropped"`
	Failed  int               `json:"failed"`
	Rows    []ImportRowResult `json:"rows"`
}

// Add records a row result and bumps the matching counter.
func (r *ImportReport) Add(res ImportRowResult) {
	r.Rows = append(r.Rows, res)
	r.Total++
	switch res.Status {
	case ImportCreated:
		r.Created++
	case ImportLinked:
		r.Linked++
	case ImportSkipped:
		r.Skipped++
	case ImportDropped:
		r.Dropped++
	case ImportFailed:
		r.Failed++
	}
}

// ImportService reconciles spreadsheet rows against profiles and participants.
type ImportService interface {
	ImportParticipants(ctx context.Context, workspaceID, eventID, filename string, r io.Reader) (*ImportReport, error)
	ImportProfiles(ctx context.Context, workspaceID, filename string, r io.Reader) (*ImportReport, error)
}
