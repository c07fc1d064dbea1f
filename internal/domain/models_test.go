package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerValidate(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
		want  bool
	}{
		{"ok plain", "a@b.co", "+1 555-123-4567", true},
		{"ok no plus", "ann@example.com", "8 800 555 35 35", true},
		{"ok hyphens", "x@y.z", "999-123-45-67", true},
		{"email no at", "a.b.co", "+1 555-123-4567", false},
		{"email no dot after at", "a@bco", "+1 555-123-4567", false},
		{"email empty", "", "+1 555-123-4567", false},
		{"phone too short", "a@b.co", "+123456789", false},
		{"phone short ending in hyphen", "a@b.co", "12345678-", false},
		{"phone starts with letter", "a@b.co", "x1234567890", false},
		{"phone empty", "a@b.co", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Customer{Name: "Ann", Email: tt.email, Phone: tt.phone, Address: "Main St"}
			assert.Equal(t, tt.want, c.Validate())
		})
	}
}

func TestOrderTotalCost(t *testing.T) {
	p := Product{Name: "Tea", Price: 9.5}

	assert.Zero(t, Order{}.TotalCost())
	assert.Equal(t, 9.5, Order{Products: []Product{p}}.TotalCost())
	// один товар дважды в списке считается дважды
	assert.Equal(t, 19.0, Order{Products: []Product{p, p}}.TotalCost())
}
