package service

import (
	"context"

	"github.com/VETechnologiesCo/VPCO/internal/model"
	"github.com/VETechnologiesCo/VPCO/internal/repository"
)

// CatalogService serves the static site content: services and company info.
type CatalogService interface {
	Services(ctx context.Context) ([]model.ServiceOffering, error)
	// Service returns repository.ErrNotFound for unknown ids.
	Service(ctx context.Context, id int) (*model.ServiceOffering, error)
	About(ctx context.Context) model.CompanyInfo
}

type catalogServiceImpl struct {
	repo  repository.ServiceRepository
	about model.CompanyInfo
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo repository.ServiceRepository, about model.CompanyInfo) CatalogService {
	return &catalogServiceImpl{repo: repo, about: about}
}

func (s *catalogServiceImpl) Services(ctx context.Context) ([]model.ServiceOffering, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []model.ServiceOffering{}
	}
	return services, nil
}

func (s *catalogServiceImpl) Service(ctx context.Context, id int) (*model.ServiceOffering, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) About(_ context.Context) model.CompanyInfo {
	return s.about
}
