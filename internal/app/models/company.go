package models

// Company defines a recruiting company account managed by its HR contact
type Company struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"companyName"`
	HRName      string   `json:"hrName"`
	HRID        string   `json:"hrId"` // Unique among companies
	HREmail     string   `json:"hrEmail"`
	Email       string   `json:"email"` // Login email, unique among companies
	Password    string   `json:"password"`
	Industry    string   `json:"industry"`
	Website     string   `json:"website"`
	Phone       string   `json:"phone"`
	JobPostings []string `json:"jobPostings"` // Ids of jobs posted by this company, in posting order
}
