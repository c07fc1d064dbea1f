package service

import (
	"context"

	"lavka/internal/domain"
	"lavka/internal/repository"
)

// ProductService инкапсулирует бизнес-логику вокруг товаров
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" || p.Price < 0 {
		return nil, ErrInvalidInput
	}
	cp := p
	if err := s.repo.AddProduct(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}
