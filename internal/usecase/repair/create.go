package repair

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/garagehub/autoshop-api/internal/audit"
	domain "github.com/garagehub/autoshop-api/internal/domain/repair"
	"github.com/garagehub/autoshop-api/internal/httperr"
	"github.com/garagehub/autoshop-api/internal/models"
)

type CreateRepair struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRepair(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRepair {
	return &CreateRepair{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateRepair) Execute(
	ctx context.Context,
	description string,
	date models.Date,
	vehicleID string,
	status string,
) (*models.Repair, error) {

	// The foreign key would also reject an unknown vehicle, but checking up
	// front turns it into a 404 instead of a bare constraint failure.
	vehicle, err := uc.repo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("vehicle_not_found")
		}
		return nil, err
	}

	if status == "" {
		status = string(domain.InitialStatus())
	}

	rec := &models.Repair{
		Description: description,
		Date:        date,
		Status:      status,
		VehicleID:   vehicle.ID,
	}

	if err := uc.repo.CreateRepair(ctx, rec); err != nil {
		return nil, err
	}
	rec.Vehicle = *vehicle

	uc.audit.Dispatch(audit.Event{
		Action:   "repair_created",
		Entity:   "repair",
		EntityID: &rec.ID,
	})

	return rec, nil
}
