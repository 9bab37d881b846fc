package models

// Application defines a student's application to a job posting
type Application struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"studentId"`
	JobID       string            `json:"jobId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"appliedDate"` // yyyy-mm-dd
	CoverLetter string            `json:"coverLetter"`
}
