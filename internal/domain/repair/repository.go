package repair

import (
	"context"

	"github.com/garagehub/autoshop-api/internal/models"
)

type Repository interface {
	// -------- Vehicle --------
	GetVehicleByID(
		ctx context.Context,
		id string,
	) (*models.Vehicle, error)

	// -------- Repair (create / read) --------
	CreateRepair(
		ctx context.Context,
		r *models.Repair,
	) error

	GetRepairByID(
		ctx context.Context,
		id string,
	) (*models.Repair, error)

	UpdateRepair(
		ctx context.Context,
		r *models.Repair,
	) error

	// -------- Listing --------
	ListRepairs(
		ctx context.Context,
	) ([]models.Repair, error)

	ListRepairsForVehicle(
		ctx context.Context,
		vehicleID string,
	) ([]models.Repair, error)

	CountByStatus(
		ctx context.Context,
		status Status,
	) (int64, error)
}
