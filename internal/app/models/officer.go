package models

// TnpOfficer defines a training & placement cell officer account
type TnpOfficer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"` // Login email, unique among officers
	Password   string `json:"password"`
	EmployeeID string `json:"employeeId"` // Unique among officers
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}
