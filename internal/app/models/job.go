package models

// Job defines a job posting owned by a company
type Job struct {
	ID                  string   `json:"id"`
	CompanyID           string   `json:"companyId"`
	CompanyName         string   `json:"companyName"` // Denormalized copy of the owning company's name
	Title               string   `json:"title"`
	Type                JobType  `json:"type"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements"`
	Skills              []string `json:"skills"`
	EligibleDepartments []string `json:"eligibleDepartments"`
	MinCGPA             float64  `json:"minCgpa"`
	Package             float64  `json:"package"`
	Location            string   `json:"location"`
	Deadline            string   `json:"deadline"`   // yyyy-mm-dd, last day to apply
	PostedDate          string   `json:"postedDate"` // yyyy-mm-dd, set at creation
	Applicants          []string `json:"applicants"` // Student ids, append-only
	Selected            []string `json:"selected"`   // Student ids accepted for this job, append-only
}

// EligibleFor reports whether the student's department and CGPA meet the
// posting's requirements
func (j *Job) EligibleFor(s *Student) bool {
	if s.CGPA < j.MinCGPA {
		return false
	}
	for _, dept := range j.EligibleDepartments {
		if dept == s.Department {
			return true
		}
	}
	return false
}
