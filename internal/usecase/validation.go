package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xavierca1/pix-checkout/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	nonDigits    = regexp.MustCompile(`\D`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CPFs com todos os dígitos iguais passam no cálculo dos verificadores mas não existem.
var degenerateCPFs = map[string]struct{}{
	"00000000000": {}, "11111111111": {}, "22222222222": {}, "33333333333": {},
	"44444444444": {}, "55555555555": {}, "66666666666": {}, "77777777777": {},
	"88888888888": {}, "99999999999": {},
}

// OnlyDigits remove tudo que não for dígito.
func OnlyDigits(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// ValidateTaxID valida o CPF pelos dois dígitos verificadores oficiais.
func ValidateTaxID(input string) bool {
	cpf := OnlyDigits(input)
	if len(cpf) != 11 {
		return false
	}
	if _, ok := degenerateCPFs[cpf]; ok {
		return false
	}

	return cpfCheckDigit(cpf[:9]) == int(cpf[9]-'0') &&
		cpfCheckDigit(cpf[:10]) == int(cpf[10]-'0')
}

// cpfCheckDigit: pesos decrescentes terminando em 2.
func cpfCheckDigit(digits string) int {
	sum := 0
	weight := len(digits) + 1
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
	}
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}

// ValidateEmail não segue a RFC: aceita o mesmo formato que o processador aceita.
func ValidateEmail(input string) bool {
	return emailPattern.MatchString(input)
}

func ValidateName(input string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(input)) >= 3
}

func ValidatePhone(input string) bool {
	n := len(OnlyDigits(input))
	return n >= 10 && n <= 11
}

// MaskTaxID formata incrementalmente: 000.000.000-00.
func MaskTaxID(value string) string {
	d := OnlyDigits(value)
	if len(d) > 11 {
		d = d[:11]
	}

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch {
		case i == 3 || i == 6:
			b.WriteByte('.')
		case i == 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// MaskPhone formata incrementalmente: (00) 00000-0000.
func MaskPhone(value string) string {
	d := OnlyDigits(value)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 2 {
		return d
	}

	area, rest := d[:2], d[2:]
	if len(rest) <= 5 {
		return fmt.Sprintf("(%s) %s", area, rest)
	}
	return fmt.Sprintf("(%s) %s-%s", area, rest[:5], rest[5:])
}

// FormatPhoneForGateway: 5511999999999
func FormatPhoneForGateway(phone string) string {
	return "55" + OnlyDigits(phone)
}

// ToMinorUnits converte reais em centavos, arredondando meio centavo para longe do zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// ValidateChargeRequest checa o formato mínimo antes de qualquer chamada ao processador.
func ValidateChargeRequest(req entity.ChargeRequest) []ValidationError {
	var errors []ValidationError

	if req.Amount <= 0 {
		errors = append(errors, ValidationError{"amount", "is required"})
	}
	if len(req.Items) == 0 {
		errors = append(errors, ValidationError{"items", "is required"})
	}

	c := req.Customer
	if c == nil {
		errors = append(errors, ValidationError{"customer", "is required"})
		return errors
	}
	if strings.TrimSpace(c.Name) == "" {
		errors = append(errors, ValidationError{"customer.name", "is required"})
	}
	if strings.TrimSpace(c.Email) == "" {
		errors = append(errors, ValidationError{"customer.email", "is required"})
	}
	if strings.TrimSpace(c.Phone) == "" {
		errors = append(errors, ValidationError{"customer.phone", "is required"})
	}
	if c.Document == nil {
		errors = append(errors, ValidationError{"customer.document", "is required"})
	}

	return errors
}
