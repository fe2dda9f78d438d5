package models

import "strings"

// Supplier is a vendor the store places orders with.
type Supplier struct {
	ID       int      `json:"id"`
	Name     string   `json:"name" validate:"required,min=2,max=100"`
	Company  string   `json:"company" validate:"required,max=100"`
	Phone    string   `json:"phone" validate:"omitempty,max=30"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Products []string `json:"products" validate:"dive,required"`
	Active   bool     `json:"active"`
}

// AddProduct records that the supplier carries product. Duplicates are ignored.
func (s *Supplier) AddProduct(product string) bool {
	product = strings.TrimSpace(product)
	if product == "" || s.Supplies(product) {
		return false
	}
	s.Products = append(s.Products, product)
	return true
}

// Supplies reports whether the supplier carries product, ignoring case.
func (s *Supplier) Supplies(product string) bool {
	for _, p := range s.Products {
		if strings.EqualFold(p, strings.TrimSpace(product)) {
			return true
		}
	}
	return false
}

// ValidateSupplier checks the struct tags on s.
func ValidateSupplier(s *Supplier) error {
	return validate.Struct(s)
}
