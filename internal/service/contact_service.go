package service

import (
	"context"

	"github.com/VETechnologiesCo/VPCO/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates in, stores it and attempts a notification. A
	// *ValidationError is returned for bad input; notification failures are
	// logged and never returned. The stored submission carries its new ID.
	Submit(ctx context.Context, in ContactInput) (*model.ContactSubmission, error)

	// List returns stored submissions in insertion order.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}
