package repository

import (
	"context"

	"github.com/VETechnologiesCo/VPCO/internal/model"
)

// DB is implemented by stores that can report whether their backing
// connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact submissions.
// Save assigns ID and Timestamp; IDs are unique and increase in insertion order.
type ContactRepository interface {
	Save(ctx context.Context, c *model.ContactSubmission) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
}

// ServiceRepository provides read-only access to the service catalogue.
type ServiceRepository interface {
	List(ctx context.Context) ([]model.ServiceOffering, error)
	FindByID(ctx context.Context, id int) (*model.ServiceOffering, error)
}
