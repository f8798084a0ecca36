package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leadform-backend/internal/domain"
	"go-leadform-backend/internal/usecase"
	"go-leadform-backend/pkg/apperror"
	"go-leadform-backend/pkg/telegram"
	"go-leadform-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockNotifier) SendLead(ctx context.Context, data telegram.LeadData) error {
	return m.Called(ctx, data).Error(0)
}

func validLead() *domain.Lead {
	return &domain.Lead{
		Name:     "Ali Valiyev",
		Phone:    "+998901234567",
		Username: "ali_dev",
		Company:  "",
		Message:  "Salom, narxi qancha?",
	}
}

func newUsecase(notifier *MockNotifier) domain.LeadUsecase {
	return usecase.NewLeadUsecase(notifier, validation.NewLeadValidator())
}

func TestLeadSubmit(t *testing.T) {
	t.Run("Valid lead is delivered exactly once", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendLead", mock.Anything, mock.AnythingOfType("telegram.LeadData")).Return(nil)

		err := newUsecase(notifier).Submit(context.Background(), validLead())
		assert.NoError(t, err)
		notifier.AssertNumberOfCalls(t, "SendLead", 1)
	})

	t.Run("Notifier receives the raw field values", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendLead", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			data := args.Get(1).(telegram.LeadData)
			assert.Equal(t, "Ali Valiyev", data.Name)
			assert.Equal(t, "ali_dev", data.Username)
		})

		_ = newUsecase(notifier).Submit(context.Background(), validLead())
	})

	t.Run("Validation failure short-circuits before delivery", func(t *testing.T) {
		notifier := new(MockNotifier)

		lead := validLead()
		lead.Name = "A"
		err := newUsecase(notifier).Submit(context.Background(), lead)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, []string{"Ism kamida 2 belgi bo‘lishi kerak."}, appErr.Errors)
		notifier.AssertNotCalled(t, "SendLead")
	})

	t.Run("Missing credentials short-circuit before delivery", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(false)

		err := newUsecase(notifier).Submit(context.Background(), validLead())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, []string{apperror.MsgNotConfigured}, appErr.Errors)
		notifier.AssertNotCalled(t, "SendLead")
	})

	t.Run("Delivery failure maps to bad gateway", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendLead", mock.Anything, mock.Anything).Return(fmt.Errorf("telegram API reported failure"))

		err := newUsecase(notifier).Submit(context.Background(), validLead())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.Code)
		assert.Equal(t, []string{apperror.MsgDeliveryFailed}, appErr.Errors)
		assert.True(t, errors.Unwrap(appErr) != nil)
	})
}
