package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/VETechnologiesCo/VPCO/internal/model"
	"github.com/VETechnologiesCo/VPCO/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given repository.
// A nil notifier disables notifications.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit runs validate -> store -> notify. The notification is awaited but
// its outcome only reaches the log.
func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput) (*model.ContactSubmission, error) {
	valid, err := ValidateContact(in)
	if err != nil {
		return nil, err
	}

	c := &model.ContactSubmission{
		Name:    valid.Name,
		Email:   valid.Email,
		Message: valid.Message,
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save contact submission: %w", err)
	}
	slog.Info("contact submission stored", "id", c.ID)

	// Non-fatal: the submission is already stored, and a client disconnect
	// must not abort delivery.
	res := s.notifier.Notify(context.WithoutCancel(ctx), c)
	logNotifyResult(c.ID, res)

	return c, nil
}

// List returns stored submissions; an empty store yields an empty slice.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	contacts, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}
	return contacts, nil
}

func logNotifyResult(id int64, res NotifyResult) {
	switch res.Outcome {
	case NotifySent:
		slog.Info("contact notification sent", "id", id)
	case NotifySkipped:
		slog.Info("contact notification skipped", "id", id, "reason", errString(res.Err))
	default:
		slog.Warn("contact notification failed", "id", id, "error", errString(res.Err))
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
