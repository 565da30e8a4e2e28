package entity

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCatalog = errors.New("catálogo de cupons inválido")

// CouponCatalog é a tabela de preço e cupons de um curso.
type CouponCatalog struct {
	CourseTitle      string
	ListPrice        decimal.Decimal
	DiscountFraction decimal.Decimal
	Codes            []string
}

// DefaultCatalog reproduz a turma de Biomedicina Hospitalar.
func DefaultCatalog() CouponCatalog {
	return CouponCatalog{
		CourseTitle:      "Biomedicina Hospitalar",
		ListPrice:        decimal.RequireFromString("7806.96"),
		DiscountFraction: decimal.RequireFromString("0.90"),
		Codes: []string{
			"SELECIONADON1", "SELECIONADON2", "SELECIONADON3", "SELECIONADON4",
			"SELECIONADON5", "SELECIONADON6", "SELECIONADON7",
		},
	}
}

func (c CouponCatalog) Validate() error {
	if strings.TrimSpace(c.CourseTitle) == "" {
		return errors.Join(ErrInvalidCatalog, errors.New("course_title is required"))
	}
	if !c.ListPrice.IsPositive() {
		return errors.Join(ErrInvalidCatalog, errors.New("list_price must be positive"))
	}
	if c.DiscountFraction.IsNegative() || c.DiscountFraction.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Join(ErrInvalidCatalog, errors.New("discount_fraction must be between 0 and 1"))
	}
	if len(c.Codes) == 0 {
		return errors.Join(ErrInvalidCatalog, errors.New("codes must not be empty"))
	}
	return nil
}

// CouponState é sobrescrito a cada cupom aplicado. Sem cupom, FinalPrice = preço de lista.
type CouponState struct {
	Code             string
	DiscountFraction decimal.Decimal
	Discount         decimal.Decimal
	FinalPrice       decimal.Decimal
}

func (s CouponState) Applied() bool {
	return s.Code != ""
}
