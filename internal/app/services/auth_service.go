package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/pkg/apperrors"
	"github.com/yigit/campushire/internal/pkg/auth"
	"github.com/yigit/campushire/internal/pkg/validation"
)

type authService struct {
	store      *store.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(st *store.Store, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		store:      st,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register validates the common fields, then dispatches on the requested
// role and creates the matching account with an incomplete profile.
func (s *authService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateCommon(req); err != nil {
		return nil, err
	}

	var (
		id  string
		err error
	)

	switch req.Role {
	case models.RoleStudent:
		id, err = s.registerStudent(req)
	case models.RoleTnp:
		id, err = s.registerOfficer(req)
	case models.RoleCompany:
		id, err = s.registerCompany(req)
	default:
		return nil, apperrors.ErrInvalidRole
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Str("role", string(req.Role)).Msg("Registration rejected")
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("role", string(req.Role)).Msg("Account registered")
	return &dto.RegisterResponse{
		ID:      id,
		Message: "Registration successful! Please login.",
	}, nil
}

func (s *authService) validateCommon(req *dto.RegisterRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if !validation.ValidEmail(req.Email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Please enter a valid email address.")
	}
	if !validation.ValidPhone(req.Phone) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPhone,
			"Phone number must include a country code followed by 10 digits.")
	}
	if !validation.ValidPassword(req.Password) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			"Password must be at least 8 characters with a letter, a number and a special character.")
	}
	return nil
}

func (s *authService) registerStudent(req *dto.RegisterRequest) (string, error) {
	if req.RollNumber == "" || req.Course == "" || req.Department == "" || req.Year == 0 {
		return "", apperrors.NewBadRequestError("Roll number, course, department and year are required for students.")
	}
	student := &models.Student{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		RollNumber: req.RollNumber,
		Course:     req.Course,
		Department: req.Department,
		Year:       req.Year,
	}
	if err := s.store.RegisterStudent(student); err != nil {
		return "", err
	}
	return student.ID, nil
}

func (s *authService) registerOfficer(req *dto.RegisterRequest) (string, error) {
	if req.EmployeeID == "" || req.Position == "" {
		return "", apperrors.NewBadRequestError("Employee ID and position are required for T&P officers.")
	}
	officer := &models.TnpOfficer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		EmployeeID: req.EmployeeID,
		Position:   req.Position,
	}
	if err := s.store.RegisterOfficer(officer); err != nil {
		return "", err
	}
	return officer.ID, nil
}

func (s *authService) registerCompany(req *dto.RegisterRequest) (string, error) {
	if req.CompanyName == "" || req.HRName == "" || req.HRID == "" {
		return "", apperrors.NewBadRequestError("Company name, HR name and HR ID are required for companies.")
	}
	hrEmail := req.HREmail
	if hrEmail == "" {
		hrEmail = req.Email
	}
	company := &models.Company{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		HRName:      req.HRName,
		HRID:        req.HRID,
		HREmail:     hrEmail,
		Industry:    req.Industry,
		Website:     req.Website,
	}
	if err := s.store.RegisterCompany(company); err != nil {
		return "", err
	}
	return company.ID, nil
}

// Login checks the credentials against the requested role's collection and
// issues an access token for the matched account.
func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := s.store.Login(email, req.Password, req.Role)
	if err != nil {
		s.logger.Warn().Str("email", email).Str("role", string(req.Role)).Msg("Login failed")
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("Token generation failed")
		return nil, apperrors.NewCustomError(err, "Could not complete login.")
	}

	s.logger.Info().Str("id", user.ID()).Str("role", string(req.Role)).Msg("Login successful")
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: s.profilePayload(user),
	}, nil
}

// Logout clears the session record from the store.
func (s *authService) Logout() error {
	return s.store.Logout()
}

// Profile returns the caller's own record shaped for their role.
func (s *authService) Profile(userID string, role models.RoleType) (interface{}, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.store.StudentByID(userID)
		if err != nil {
			return nil, err
		}
		return dto.NewStudentResponse(student), nil
	case models.RoleTnp:
		officer, err := s.store.OfficerByID(userID)
		if err != nil {
			return nil, err
		}
		return dto.NewOfficerResponse(officer), nil
	case models.RoleCompany:
		company, err := s.store.CompanyByID(userID)
		if err != nil {
			return nil, err
		}
		return dto.NewCompanyResponse(company), nil
	default:
		return nil, apperrors.ErrInvalidRole
	}
}

func (s *authService) profilePayload(user *models.SessionUser) interface{} {
	switch user.Role {
	case models.RoleStudent:
		return dto.NewStudentResponse(user.Student)
	case models.RoleTnp:
		return dto.NewOfficerResponse(user.Officer)
	case models.RoleCompany:
		return dto.NewCompanyResponse(user.Company)
	}
	return nil
}
