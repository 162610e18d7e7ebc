package usecase

import (
	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/grouping"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

// CatalogUseCase builds the grouped catalog trees served to the
// browsing UI.
type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(productRepo repository.ProductRepository, settingsRepo repository.SettingsRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, settingsRepo: settingsRepo}
}

// Tree loads the catalog, derives display prices, and groups it for the
// requested view, filtered by the search query. Prices are derived onto
// value copies before grouping so every tree leaf carries them.
func (uc *CatalogUseCase) Tree(view grouping.View, query string) (*dto.CatalogTreeResponse, error) {
	if !view.Valid() {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	rates, err := uc.settingsRepo.GetExchangeRates()
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	groups := grouping.FilterAndGroup(products, view, query)

	return &dto.CatalogTreeResponse{
		View:   string(view),
		Query:  query,
		Groups: toGroupResponses(groups, "", *rates),
	}, nil
}

func toGroupResponses(nodes []grouping.GroupNode, parent string, rates entity.ExchangeRates) []dto.GroupNodeResponse {
	out := make([]dto.GroupNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		path := grouping.Path(parent, n.Key)
		items := make([]dto.ProductResponse, 0, len(n.Items))
		for i := range n.Items {
			items = append(items, *toProductResponse(&n.Items[i], rates))
		}
		out = append(out, dto.GroupNodeResponse{
			Key:       n.Key,
			Path:      path,
			Level:     n.Level,
			Count:     len(n.Items),
			Items:     items,
			Subgroups: toGroupResponses(n.Subgroups, path, rates),
		})
	}
	return out
}
