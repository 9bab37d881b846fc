// Package seed creates the default accounts a fresh installation needs.
package seed

import (
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/pkg/apperrors"
)

// CreateDefaultData registers the default T&P officer account if it does
// not exist yet, so a fresh installation has a placement-cell login.
func CreateDefaultData(st *store.Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (T&P officer)...")

	officer := &appModels.TnpOfficer{
		Name:       "Placement Cell",
		Email:      "tnp@campus.edu",
		Password:   "Tnp@12345",
		EmployeeID: "TNP001",
		Position:   "Placement Officer",
		Department: "Training & Placement",
		Phone:      "+911234567890",
	}

	err := st.RegisterOfficer(officer)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrEmployeeIDExists) {
			lgr.Debug().Str("email", officer.Email).Msg("Default T&P officer already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default T&P officer")
		return err
	}

	lgr.Info().Str("email", officer.Email).Msg("Default T&P officer created")
	return nil
}
