//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Resume form field names, as used by form edits.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldEducation  = "education"
	FieldExperience = "experience"
	FieldSkills     = "skills"
)

// ResumeFields lists the form fields in display order.
var ResumeFields = []string{FieldName, FieldEmail, FieldPhone, FieldExperience, FieldEducation, FieldSkills}

var fieldLabels = map[string]string{
	FieldName:       "Name",
	FieldEmail:      "Email",
	FieldPhone:      "Phone",
	FieldEducation:  "Education",
	FieldExperience: "Experience",
	FieldSkills:     "Skills",
}

// FieldLabel returns the display label of a form field, or "" if unknown.
func FieldLabel(name string) string {
	return fieldLabels[name]
}

// ResumeForm holds the editable fields of the resume panel. All fields are free text.
type ResumeForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
}

// SetField updates a single field by name.
func (f *ResumeForm) SetField(name, value string) error {
	switch name {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldEducation:
		f.Education = value
	case FieldExperience:
		f.Experience = value
	case FieldSkills:
		f.Skills = value
	default:
		return fmt.Errorf("unknown resume field %q", name)
	}
	return nil
}

// Field returns the value of a field by name.
func (f ResumeForm) Field(name string) (string, bool) {
	switch name {
	case FieldName:
		return f.Name, true
	case FieldEmail:
		return f.Email, true
	case FieldPhone:
		return f.Phone, true
	case FieldEducation:
		return f.Education, true
	case FieldExperience:
		return f.Experience, true
	case FieldSkills:
		return f.Skills, true
	}
	return "", false
}

// UploadedFile describes a resume file handed to the parser.
type UploadedFile struct {
	Name        string `json:"name" validate:"required"`
	Size        int64  `json:"size" validate:"gt=0"`
	ContentType string `json:"type,omitempty"`
}
