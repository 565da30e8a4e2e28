package entity

const (
	DocumentTypeCPF  = "cpf"
	DocumentTypeCNPJ = "cnpj"
)

// Value Object: Document
type Document struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// BuyerIdentity é o que o step 1 do checkout coleta.
// TaxID e Phone ficam como digitados (com máscara); a normalização acontece ao montar a cobrança.
type BuyerIdentity struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	TaxID    string `json:"tax_id"`
	Phone    string `json:"phone"`
}

// Customer é o comprador no formato que o processador espera.
type Customer struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Document *Document `json:"document,omitempty"`
}
