package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
)

type BillingUsecase interface {
	CreateBillingAccount(ctx context.Context, uhid string, request *requests.BillingInfo) error
	FindInvoicesByUHID(ctx context.Context, uhid string) ([]string, error)
}
