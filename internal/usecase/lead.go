package usecase

import (
	"context"

	"go-leadform-backend/internal/domain"
	"go-leadform-backend/pkg/apperror"
	"go-leadform-backend/pkg/telegram"
	"go-leadform-backend/pkg/validation"
)

// LeadNotifier is the outbound delivery dependency, satisfied by
// *telegram.Client.
type LeadNotifier interface {
	IsConfigured() bool
	SendLead(ctx context.Context, data telegram.LeadData) error
}

type leadUsecase struct {
	notifier  LeadNotifier
	validator *validation.LeadValidator
}

// NewLeadUsecase creates a new lead usecase
func NewLeadUsecase(notifier LeadNotifier, validator *validation.LeadValidator) domain.LeadUsecase {
	return &leadUsecase{
		notifier:  notifier,
		validator: validator,
	}
}

// Submit validates the lead and delivers the chat notification. Validation
// and configuration failures short-circuit before any external call.
func (uc *leadUsecase) Submit(ctx context.Context, lead *domain.Lead) error {
	errs := uc.validator.Validate(validation.LeadInput{
		Name:     lead.Name,
		Phone:    lead.Phone,
		Username: lead.Username,
		Company:  lead.Company,
		Message:  lead.Message,
	})
	if len(errs) > 0 {
		return apperror.Validation(errs)
	}

	if !uc.notifier.IsConfigured() {
		return apperror.NotConfigured()
	}

	if err := uc.notifier.SendLead(ctx, telegram.LeadData{
		Name:     lead.Name,
		Phone:    lead.Phone,
		Username: lead.Username,
		Company:  lead.Company,
		Message:  lead.Message,
	}); err != nil {
		return apperror.Delivery(err)
	}

	return nil
}
