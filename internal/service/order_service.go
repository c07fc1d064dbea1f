package service

import (
	"context"
	"errors"

	"lavka/internal/domain"
	"lavka/internal/repository"
)

// OrderService реализует логику заказов: оформление и сводка по датам
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

var ErrInvalidInput = errors.New("invalid input")

// Place сохраняет заказ. Клиент и все товары должны быть уже
// зарегистрированы в хранилище, иначе возвращается repository.ErrNotFound
// и ни одной строки не создаётся.
func (s *OrderService) Place(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if o.Customer.Email == "" || o.Date == "" {
		return nil, ErrInvalidInput
	}
	cp := o
	if err := s.orders.AddOrder(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// OrdersByDate возвращает количество заказов по датам
func (s *OrderService) OrdersByDate(ctx context.Context) ([]repository.DateCount, error) {
	return s.orders.OrdersByDate(ctx)
}
