package domain

import "regexp"

// Customer представляет клиента магазина
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)
	phoneRe = regexp.MustCompile(`^\+?\d[\d -]{8,}\d`)
)

// Validate проверяет корректность email и телефона клиента.
// Никакой нормализации (trim, lower-case) не выполняется.
func (c Customer) Validate() bool {
	if !emailRe.MatchString(c.Email) {
		return false
	}
	return phoneRe.MatchString(c.Phone)
}

// Product представляет товар
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItem позиция заказа: одна строка связки на каждый товар,
// количество не моделируется — повтор товара в списке это вторая позиция
type OrderItem struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
}

// Order сущность заказа
type Order struct {
	ID       int64     `json:"id"`
	Customer Customer  `json:"customer"`
	Products []Product `json:"products"`
	Date     string    `json:"date"`
}

// TotalCost возвращает общую стоимость заказа
func (o Order) TotalCost() float64 {
	var sum float64
	for _, p := range o.Products {
		sum += p.Price
	}
	return sum
}
