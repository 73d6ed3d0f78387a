package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/garagehub/autoshop-api/internal/domain/repair"
	"github.com/garagehub/autoshop-api/internal/models"
)

type RepairGormRepository struct {
	db *gorm.DB
}

func NewRepairGormRepository(db *gorm.DB) *RepairGormRepository {
	return &RepairGormRepository{db: db}
}

// --------------------------------------------------
// Vehicle
// --------------------------------------------------

func (r *RepairGormRepository) GetVehicleByID(
	ctx context.Context,
	id string,
) (*models.Vehicle, error) {

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// --------------------------------------------------
// Repair
// --------------------------------------------------

func (r *RepairGormRepository) CreateRepair(
	ctx context.Context,
	rec *models.Repair,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RepairGormRepository) GetRepairByID(
	ctx context.Context,
	id string,
) (*models.Repair, error) {

	var rec models.Repair
	if err := r.db.WithContext(ctx).
		Preload("Vehicle.Customer").
		Where("id = ?", id).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RepairGormRepository) UpdateRepair(
	ctx context.Context,
	rec *models.Repair,
) error {
	// rec arrives with Vehicle preloaded for serialization; only the repair
	// row itself is written back.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *RepairGormRepository) ListRepairs(
	ctx context.Context,
) ([]models.Repair, error) {

	var recs []models.Repair
	if err := r.db.WithContext(ctx).
		Preload("Vehicle.Customer").
		Order("created_at ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RepairGormRepository) ListRepairsForVehicle(
	ctx context.Context,
	vehicleID string,
) ([]models.Repair, error) {

	var recs []models.Repair
	if err := r.db.WithContext(ctx).
		Preload("Vehicle.Customer").
		Where("vehicle_id = ?", vehicleID).
		Order("created_at ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RepairGormRepository) CountByStatus(
	ctx context.Context,
	status domain.Status,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Repair{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*RepairGormRepository)(nil)
