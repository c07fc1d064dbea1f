package service

import (
	"context"
	"errors"

	"lavka/internal/domain"
	"lavka/internal/repository"
)

// CustomerService инкапсулирует бизнес-логику вокруг клиентов
type CustomerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// ErrInvalidCustomer возвращается при некорректных данных клиента
var ErrInvalidCustomer = errors.New("invalid customer data")

// Register проверяет данные клиента и сохраняет его.
// При непрошедшей валидации в хранилище ничего не пишется.
func (s *CustomerService) Register(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if !c.Validate() {
		return nil, ErrInvalidCustomer
	}
	cp := c
	if err := s.repo.AddCustomer(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}
