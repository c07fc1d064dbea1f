package repository

import (
	"context"
	"errors"
	"io"

	"lavka/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ErrUnknownTable возвращается для имени таблицы вне допустимого списка
var ErrUnknownTable = errors.New("unknown table")

// DateCount количество заказов за одну дату
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	AddCustomer(ctx context.Context, c *domain.Customer) error
	CustomerIDByEmail(ctx context.Context, email string) (int64, error)
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	AddProduct(ctx context.Context, p *domain.Product) error
	ProductIDByNamePrice(ctx context.Context, name string, price float64) (int64, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	AddOrder(ctx context.Context, o *domain.Order) error
	OrdersByDate(ctx context.Context) ([]DateCount, error)
}

// CSVPorter экспорт и импорт таблиц в CSV
type CSVPorter interface {
	ExportCSV(ctx context.Context, table string, w io.Writer) error
	ImportCSV(ctx context.Context, table string, r io.Reader) (int, error)
}

// tableColumns — закрытый список таблиц и их колонок в порядке схемы.
// Имена таблиц попадают в текст запроса, поэтому подстановка допускается
// только после проверки по этому списку.
var tableColumns = map[string][]string{
	"customers":   {"id", "name", "email", "phone", "address"},
	"products":    {"id", "name", "price"},
	"orders":      {"id", "customer_id", "date"},
	"order_items": {"id", "order_id", "product_id"},
}
