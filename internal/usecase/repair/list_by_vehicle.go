package repair

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/garagehub/autoshop-api/internal/domain/repair"
	"github.com/garagehub/autoshop-api/internal/httperr"
	"github.com/garagehub/autoshop-api/internal/models"
)

type ListRepairsByVehicle struct {
	repo domain.Repository
}

func NewListRepairsByVehicle(repo domain.Repository) *ListRepairsByVehicle {
	return &ListRepairsByVehicle{repo: repo}
}

// Execute returns the repairs for a known vehicle. An unknown vehicle id is
// the not-found case; a vehicle without repairs gets an empty list.
func (uc *ListRepairsByVehicle) Execute(
	ctx context.Context,
	vehicleID string,
) ([]models.Repair, error) {

	if _, err := uc.repo.GetVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("vehicle_not_found")
		}
		return nil, err
	}

	return uc.repo.ListRepairsForVehicle(ctx, vehicleID)
}
