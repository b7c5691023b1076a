package repository

import (
	"context"

	"github.com/VETechnologiesCo/VPCO/internal/model"
)

// StaticServiceRepository serves a catalogue fixed at construction time.
type StaticServiceRepository struct {
	services []model.ServiceOffering
	byID     map[int]int
}

// NewStaticServiceRepository copies services into a read-only catalogue.
func NewStaticServiceRepository(services []model.ServiceOffering) *StaticServiceRepository {
	r := &StaticServiceRepository{
		services: append([]model.ServiceOffering(nil), services...),
		byID:     make(map[int]int, len(services)),
	}
	for i, s := range r.services {
		r.byID[s.ID] = i
	}
	return r
}

var _ ServiceRepository = (*StaticServiceRepository)(nil)

// List returns the catalogue in seed order.
func (r *StaticServiceRepository) List(_ context.Context) ([]model.ServiceOffering, error) {
	return append([]model.ServiceOffering(nil), r.services...), nil
}

// FindByID returns ErrNotFound for unknown ids.
func (r *StaticServiceRepository) FindByID(_ context.Context, id int) (*model.ServiceOffering, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	s := r.services[i]
	return &s, nil
}
