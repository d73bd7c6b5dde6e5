package dto

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/msavelyev/adledger/internal/withdrawal/model"
)

type WithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	Method      string          `json:"method" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
}

type TransitionRequest struct {
	Status         string  `json:"status" validate:"required"`
	TransactionRef *string `json:"transaction_ref,omitempty"`
	Notes          string  `json:"notes"`
}

type WithdrawalResponse struct {
	ID             string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method"`
	Destination    string          `json:"destination"`
	Status         string          `json:"status"`
	TransactionRef *string         `json:"transaction_ref,omitempty"`
	RequestedAt    string          `json:"requested_at"`
	ProcessedAt    *string         `json:"processed_at,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

func MapToWithdrawalResponse(withdrawal model.Withdrawal) WithdrawalResponse {
	response := WithdrawalResponse{
		ID:             withdrawal.ID,
		Amount:         withdrawal.Amount,
		Method:         withdrawal.Method,
		Destination:    withdrawal.Destination,
		Status:         string(withdrawal.Status),
		TransactionRef: withdrawal.TransactionRef,
		RequestedAt:    withdrawal.RequestedAt.Format(time.RFC3339),
		Notes:          withdrawal.Notes,
	}

	if withdrawal.ProcessedAt != nil {
		processedAt := withdrawal.ProcessedAt.Format(time.RFC3339)
		response.ProcessedAt = &processedAt
	}

	return response
}

func PositiveAmount(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Struct {
		return false
	}

	value, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return value.IsPositive()
}
