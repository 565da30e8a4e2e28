package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xavierca1/pix-checkout/internal/entity"
)

const CouponRejectedMessage = "✗ Código inválido. Tente novamente."

type CouponOutcome int

const (
	// CouponEmpty: nada digitado, nada muda.
	CouponEmpty CouponOutcome = iota
	CouponApplied
	CouponRejected
)

type CouponResolution struct {
	Outcome CouponOutcome
	State   entity.CouponState
	Message string
}

type CouponResolver struct {
	catalog entity.CouponCatalog
	codes   map[string]struct{}
}

func NewCouponResolver(catalog entity.CouponCatalog) *CouponResolver {
	codes := make(map[string]struct{}, len(catalog.Codes))
	for _, c := range catalog.Codes {
		codes[normalizeCoupon(c)] = struct{}{}
	}
	return &CouponResolver{catalog: catalog, codes: codes}
}

func normalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *CouponResolver) Catalog() entity.CouponCatalog {
	return r.catalog
}

// NoCoupon é o estado inicial: paga o preço de lista.
func (r *CouponResolver) NoCoupon() entity.CouponState {
	return entity.CouponState{
		DiscountFraction: decimal.Zero,
		Discount:         decimal.Zero,
		FinalPrice:       r.catalog.ListPrice,
	}
}

func (r *CouponResolver) Resolve(raw string) CouponResolution {
	code := normalizeCoupon(raw)
	if code == "" {
		return CouponResolution{Outcome: CouponEmpty}
	}
	if _, ok := r.codes[code]; !ok {
		return CouponResolution{Outcome: CouponRejected, Message: CouponRejectedMessage}
	}

	discount := r.catalog.ListPrice.Mul(r.catalog.DiscountFraction)
	return CouponResolution{
		Outcome: CouponApplied,
		State: entity.CouponState{
			Code:             code,
			DiscountFraction: r.catalog.DiscountFraction,
			Discount:         discount,
			FinalPrice:       r.catalog.ListPrice.Sub(discount),
		},
		Message: `✓ Cupom "` + code + `" aplicado! Você economizou ` +
			r.catalog.DiscountFraction.Shift(2).StringFixed(0) + "%",
	}
}
