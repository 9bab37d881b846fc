package models

// Student defines a student account together with its academic profile
type Student struct {
	ID               string     `json:"id" example:"f0a9c1d2"`                  // Unique identifier for the student
	Name             string     `json:"name" example:"Asha Verma"`              // Full name
	Email            string     `json:"email" example:"asha@college.edu"`       // Login email, unique among students
	Password         string     `json:"password"`                               // Plaintext credential; API responses use DTOs that omit it
	Phone            string     `json:"phone,omitempty" example:"+919876543210"`
	RollNumber       string     `json:"rollNumber" example:"21CS104"` // Unique among students
	Course           string     `json:"course" example:"B.Tech"`
	Department       string     `json:"department" example:"CSE"`
	Year             int        `json:"year" example:"3"` // Current academic year, 1-based
	CGPA             float64    `json:"cgpa" example:"8.4"`
	CGPASemesters    []float64  `json:"cgpaSemesters,omitempty"` // Per-semester CGPA, length = Year * 2
	Tenth            float64    `json:"tenth,omitempty"`
	Twelfth          float64    `json:"twelfth,omitempty"`
	Skills           []string   `json:"skills"`
	Github           string     `json:"github,omitempty"`
	LinkedIn         string     `json:"linkedIn,omitempty"`
	Interest         string     `json:"interest,omitempty"`
	GradYear         int        `json:"gradYear,omitempty"`
	Resume           string     `json:"resume,omitempty"` // PDF embedded as a data URL
	ProfileCompleted bool       `json:"profileCompleted"`
	Applications     []string   `json:"applications"` // Application ids, in submission order
	Placement        *Placement `json:"placement,omitempty"`
}

// Placement is the terminal record of a successful accepted application.
// It is written exactly once and never cleared.
type Placement struct {
	Company  string  `json:"company"`
	Position string  `json:"position"`
	Package  float64 `json:"package"`
	Date     string  `json:"date"` // yyyy-mm-dd
}

// Placed reports whether the student holds a placement record
func (s *Student) Placed() bool {
	return s.Placement != nil
}
