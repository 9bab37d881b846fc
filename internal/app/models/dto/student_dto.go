package dto

import "github.com/yigit/campushire/internal/app/models"

// StudentResponse mirrors the student record without the credential
type StudentResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	RollNumber       string            `json:"rollNumber"`
	Course           string            `json:"course"`
	Department       string            `json:"department"`
	Year             int               `json:"year"`
	CGPA             float64           `json:"cgpa"`
	CGPASemesters    []float64         `json:"cgpaSemesters,omitempty"`
	Tenth            float64           `json:"tenth,omitempty"`
	Twelfth          float64           `json:"twelfth,omitempty"`
	Skills           []string          `json:"skills"`
	Github           string            `json:"github,omitempty"`
	LinkedIn         string            `json:"linkedIn,omitempty"`
	Interest         string            `json:"interest,omitempty"`
	GradYear         int               `json:"gradYear,omitempty"`
	HasResume        bool              `json:"hasResume"`
	ProfileCompleted bool              `json:"profileCompleted"`
	Applications     []string          `json:"applications"`
	Placement        *models.Placement `json:"placement,omitempty"`
}

// NewStudentResponse converts a student record for API output
func NewStudentResponse(s *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		Phone:            s.Phone,
		RollNumber:       s.RollNumber,
		Course:           s.Course,
		Department:       s.Department,
		Year:             s.Year,
		CGPA:             s.CGPA,
		CGPASemesters:    s.CGPASemesters,
		Tenth:            s.Tenth,
		Twelfth:          s.Twelfth,
		Skills:           s.Skills,
		Github:           s.Github,
		LinkedIn:         s.LinkedIn,
		Interest:         s.Interest,
		GradYear:         s.GradYear,
		HasResume:        s.Resume != "",
		ProfileCompleted: s.ProfileCompleted,
		Applications:     s.Applications,
		Placement:        s.Placement,
	}
}

// NewStudentResponses converts a student listing
func NewStudentResponses(students []*models.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// UpdateStudentProfileRequest represents a student profile edit. All fields
// are required by the portal; the resume attachment travels separately as a
// multipart file.
type UpdateStudentProfileRequest struct {
	Name          string    `json:"name" form:"name" binding:"required"`
	Phone         string    `json:"phone" form:"phone" binding:"required"`
	Github        string    `json:"github" form:"github" binding:"required"`
	LinkedIn      string    `json:"linkedIn" form:"linkedIn" binding:"required"`
	CGPA          float64   `json:"cgpa" form:"cgpa" binding:"required,gt=0,lte=10"`
	Tenth         float64   `json:"tenth" form:"tenth" binding:"required,gt=0"`
	Twelfth       float64   `json:"twelfth" form:"twelfth" binding:"required,gt=0"`
	Interest      string    `json:"interest" form:"interest" binding:"required"`
	GradYear      int       `json:"gradYear" form:"gradYear" binding:"required"`
	Skills        []string  `json:"skills" form:"skills" binding:"required,min=1"`
	CGPASemesters []float64 `json:"cgpaSemesters" form:"cgpaSemesters" binding:"required,min=1"`
}
