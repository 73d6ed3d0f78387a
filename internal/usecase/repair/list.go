package repair

import (
	"context"

	domain "github.com/garagehub/autoshop-api/internal/domain/repair"
	"github.com/garagehub/autoshop-api/internal/models"
)

type ListRepairs struct {
	repo domain.Repository
}

func NewListRepairs(repo domain.Repository) *ListRepairs {
	return &ListRepairs{repo: repo}
}

func (uc *ListRepairs) Execute(ctx context.Context) ([]models.Repair, error) {
	return uc.repo.ListRepairs(ctx)
}
