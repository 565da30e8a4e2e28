package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

// yamlDecimal aceita tanto `7806.96` quanto `"7806.96"` sem passar por float64.
type yamlDecimal struct {
	decimal.Decimal
	set bool
}

func (d *yamlDecimal) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("linha %d: valor decimal inválido %q", value.Line, value.Value)
	}
	d.Decimal = parsed
	d.set = true
	return nil
}

type catalogFile struct {
	CourseTitle      string      `yaml:"course_title"`
	ListPrice        yamlDecimal `yaml:"list_price"`
	DiscountFraction yamlDecimal `yaml:"discount_fraction"`
	Codes            []string    `yaml:"codes"`
}

// LoadCatalog lê o catálogo de cupons. Caminho vazio usa o catálogo padrão; campos
// ausentes no arquivo também caem no padrão.
func LoadCatalog(path string) (entity.CouponCatalog, error) {
	catalog := entity.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entity.CouponCatalog{}, fmt.Errorf("erro ao ler catálogo %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (entity.CouponCatalog, error) {
	catalog := entity.DefaultCatalog()

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return entity.CouponCatalog{}, fmt.Errorf("erro ao interpretar catálogo: %w", err)
	}

	if file.CourseTitle != "" {
		catalog.CourseTitle = file.CourseTitle
	}
	if file.ListPrice.set {
		catalog.ListPrice = file.ListPrice.Decimal
	}
	if file.DiscountFraction.set {
		catalog.DiscountFraction = file.DiscountFraction.Decimal
	}
	if len(file.Codes) > 0 {
		catalog.Codes = file.Codes
	}

	if err := catalog.Validate(); err != nil {
		return entity.CouponCatalog{}, err
	}
	return catalog, nil
}
