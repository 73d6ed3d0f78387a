package repair

import (
	"context"

	domain "github.com/garagehub/autoshop-api/internal/domain/repair"
)

type CountInShopRepairs struct {
	repo domain.Repository
}

func NewCountInShopRepairs(repo domain.Repository) *CountInShopRepairs {
	return &CountInShopRepairs{repo: repo}
}

func (uc *CountInShopRepairs) Execute(ctx context.Context) (int64, error) {
	return uc.repo.CountByStatus(ctx, domain.StatusInShop)
}
