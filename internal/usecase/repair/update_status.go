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

type UpdateRepairStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateRepairStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateRepairStatus {
	return &UpdateRepairStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateRepairStatus) Execute(
	ctx context.Context,
	repairID string,
	status string,
) (*models.Repair, error) {

	rec, err := uc.repo.GetRepairByID(ctx, repairID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("repair_not_found")
		}
		return nil, err
	}

	previous := rec.Status
	rec.Status = status

	if err := uc.repo.UpdateRepair(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "repair_status_updated",
		Entity:   "repair",
		EntityID: &rec.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   status,
		},
	})

	return rec, nil
}
