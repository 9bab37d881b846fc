package models

// RoleType defines the portal user role
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTnp     RoleType = "tnp"
	RoleCompany RoleType = "company"
)

// IsValid reports whether the role is one of the three portal roles
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleTnp || r == RoleCompany
}

// JobType defines the kind of position a job posting offers
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobInternship JobType = "internship"
	JobPartTime   JobType = "part-time"
)

// ApplicationStatus defines the state of a job application.
// Transitions are one-way: pending moves to accepted or rejected and
// both of those are terminal.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// IsTerminal reports whether the status permits no further transition
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// AppData is the full serializable image of the five entity collections.
// It is what the persistence provider stores under the state key.
type AppData struct {
	Students     []*Student     `json:"students"`
	Companies    []*Company     `json:"companies"`
	TnpOfficers  []*TnpOfficer  `json:"tnpOfficers"`
	Jobs         []*Job         `json:"jobs"`
	Applications []*Application `json:"applications"`
}

// NewAppData returns an empty snapshot with all collections initialized
func NewAppData() *AppData {
	return &AppData{
		Students:     []*Student{},
		Companies:    []*Company{},
		TnpOfficers:  []*TnpOfficer{},
		Jobs:         []*Job{},
		Applications: []*Application{},
	}
}

// SessionUser is the currently authenticated entity. Exactly one of the
// record pointers is set, matching Role.
type SessionUser struct {
	Role    RoleType    `json:"role"`
	Student *Student    `json:"student,omitempty"`
	Officer *TnpOfficer `json:"officer,omitempty"`
	Company *Company    `json:"company,omitempty"`
}

// ID returns the id of the underlying record
func (u *SessionUser) ID() string {
	switch u.Role {
	case RoleStudent:
		if u.Student != nil {
			return u.Student.ID
		}
	case RoleTnp:
		if u.Officer != nil {
			return u.Officer.ID
		}
	case RoleCompany:
		if u.Company != nil {
			return u.Company.ID
		}
	}
	return ""
}

// Email returns the login email of the underlying record
func (u *SessionUser) Email() string {
	switch u.Role {
	case RoleStudent:
		if u.Student != nil {
			return u.Student.Email
		}
	case RoleTnp:
		if u.Officer != nil {
			return u.Officer.Email
		}
	case RoleCompany:
		if u.Company != nil {
			return u.Company.Email
		}
	}
	return ""
}
