package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Mathdino/mb-cardapionline/internal/core"
)

type Service struct {
	repo      Repository
	companies core.CompanyReader
}

func NewService(repo Repository, companies core.CompanyReader) *Service {
	return &Service{repo: repo, companies: companies}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

// Checkout validates the payload against the company's current state and
// persists the order as one atomic write. Guards are check-then-act: company
// state is read immediately before the insert, and any failure aborts before
// the write, leaving the caller's cart untouched.
func (s *Service) Checkout(
	ctx context.Context,
	payload *Order,
) (*Order, string, error) {

	if len(payload.Items) == 0 {
		return nil, "", core.Invalid("o carrinho está vazio")
	}
	if strings.TrimSpace(payload.CustomerName) == "" {
		return nil, "", core.Invalid("informe seu nome")
	}
	if strings.TrimSpace(payload.CustomerPhone) == "" {
		return nil, "", core.Invalid("informe seu telefone")
	}
	if payload.DeliveryType == DeliveryDelivery {
		if payload.Address == nil ||
			payload.Address.Street == "" ||
			payload.Address.Number == "" {
			return nil, "", core.Invalid("informe o endereço de entrega (rua e número)")
		}
	}
	if _, ok := PaymentMethodLabels[payload.PaymentMethod]; !ok {
		return nil, "", core.Invalid("forma de pagamento inválida")
	}

	info, err := s.companies.GetCheckoutInfo(ctx, payload.CompanyID)
	if err != nil {
		return nil, "", err
	}
	if !info.IsOpen {
		return nil, "", core.Invalid("o restaurante está fechado no momento")
	}
	if payload.Total < info.MinimumOrder {
		return nil, "", core.Invalid(fmt.Sprintf(
			"o pedido mínimo é %s", FormatCurrency(info.MinimumOrder),
		))
	}

	payload.ID = uuid.New().String()
	payload.Status = StatusPending

	if err := s.repo.Create(ctx, payload); err != nil {
		return nil, "", err
	}

	return payload, WhatsAppURL(payload, info.Name, info.WhatsApp), nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (s *Service) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Order, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// UpdateStatus enforces the order state machine before persisting.
func (s *Service) UpdateStatus(
	ctx context.Context,
	orderID string,
	next Status,
) (*Order, error) {

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	updated, err := order.Status.Transition(next)
	if err != nil {
		return nil, core.Invalid(err.Error())
	}

	if err := s.repo.UpdateStatus(ctx, orderID, updated); err != nil {
		return nil, err
	}

	order.Status = updated
	return order, nil
}
