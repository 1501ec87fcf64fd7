// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume represents a structured résumé as authored in the editor or stored by
// a caller. Every field is optional: uploaded résumés are frequently partial,
// so all accessors must tolerate missing data.
type Resume struct {
	Name           string       `json:"name,omitempty"`
	Contact        *Contact     `json:"contact,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Experience     []Experience `json:"experience,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Projects       []Project    `json:"projects,omitempty"`
}

// Contact represents the contact block of a résumé
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience represents a single work-history entry
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// The accessors below centralize nil-safety so scoring code can read fields
// without guarding every access. A nil receiver behaves like an empty résumé.

// GetEmail returns the contact email, or "" if the contact block is absent
func (r *Resume) GetEmail() string {
	if r == nil || r.Contact == nil {
		return ""
	}
	return r.Contact.Email
}

// GetPhone returns the contact phone, or "" if the contact block is absent
func (r *Resume) GetPhone() string {
	if r == nil || r.Contact == nil {
		return ""
	}
	return r.Contact.Phone
}

// GetLocation returns the contact location, or "" if the contact block is absent
func (r *Resume) GetLocation() string {
	if r == nil || r.Contact == nil {
		return ""
	}
	return r.Contact.Location
}

// GetSummary returns the summary text, or "" for a nil résumé
func (r *Resume) GetSummary() string {
	if r == nil {
		return ""
	}
	return r.Summary
}

// GetExperience returns the experience entries, or nil for a nil résumé
func (r *Resume) GetExperience() []Experience {
	if r == nil {
		return nil
	}
	return r.Experience
}

// GetEducation returns the education entries, or nil for a nil résumé
func (r *Resume) GetEducation() []Education {
	if r == nil {
		return nil
	}
	return r.Education
}

// GetSkills returns the skill list, or nil for a nil résumé
func (r *Resume) GetSkills() []string {
	if r == nil {
		return nil
	}
	return r.Skills
}

// GetCertifications returns the certification list, or nil for a nil résumé
func (r *Resume) GetCertifications() []string {
	if r == nil {
		return nil
	}
	return r.Certifications
}
