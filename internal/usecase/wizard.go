package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

type Step int

const (
	StepIdentity Step = iota + 1
	StepCouponAndConfirm
	StepPaymentDisplay
)

// Campos do formulário que recebem marcação de erro/validade.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldTaxID           Field = "cpf"
	FieldPhone           Field = "phone"
	FieldConsent         Field = "consent"
	FieldAcknowledgement Field = "acknowledgement"
	FieldConfirmTaxID    Field = "cpf-step2"
	FieldCoupon          Field = "coupon"
	FieldPromptCoupon    Field = "popup-coupon"
)

const (
	PixErrorMessage    = "Erro ao gerar código PIX. Por favor, tente novamente."
	PixExpiration      = time.Hour
	expirationLayout   = "02/01/2006 às 15:04"
	promptAppliedLabel = "✓ Cupom aplicado com sucesso!"
)

// WizardState é imutável do ponto de vista do chamador: Handle devolve um novo valor.
type WizardState struct {
	CheckoutID string
	Step       Step
	Identity   entity.BuyerIdentity

	// step 2
	FirstName    string
	LastName     string
	ConfirmTaxID string
	CouponField  string
	Coupon       entity.CouponState

	// popup de cupom, mostrado uma única vez
	PromptOpen     bool
	PromptResolved bool

	// step 3
	Charge    *entity.ChargeResult
	ExpiresAt time.Time
}

type EffectKind string

const (
	EffectFieldInvalid   EffectKind = "field_invalid"
	EffectFieldValid     EffectKind = "field_valid"
	EffectFieldCleared   EffectKind = "field_cleared"
	EffectFieldFormatted EffectKind = "field_formatted"
	EffectStepChanged    EffectKind = "step_changed"
	EffectCouponApplied  EffectKind = "coupon_applied"
	EffectCouponRejected EffectKind = "coupon_rejected"
	EffectPromptOpened   EffectKind = "prompt_opened"
	EffectPromptClosed   EffectKind = "prompt_closed"
	EffectAlert          EffectKind = "alert"
)

// Effect descreve o que a interface deve fazer; o Wizard não renderiza nada.
type Effect struct {
	Kind    EffectKind
	Field   Field
	Step    Step
	Value   string
	Message string
}

// Event é uma ação do usuário.
type Event interface {
	isWizardEvent()
}

type Keystroke struct {
	Field Field
	Value string
}

type SubmitIdentity struct {
	FullName     string
	Email        string
	TaxID        string
	Phone        string
	Consent      bool
	Acknowledged bool
}

type EditConfirmation struct {
	FirstName string
	LastName  string
	TaxID     string
}

type ApplyCoupon struct {
	Code string
}

type RequestPix struct{}

type PromptApplyCoupon struct {
	Code string
}

type PromptSkip struct{}

func (Keystroke) isWizardEvent()         {}
func (SubmitIdentity) isWizardEvent()    {}
func (EditConfirmation) isWizardEvent()  {}
func (ApplyCoupon) isWizardEvent()       {}
func (RequestPix) isWizardEvent()        {}
func (PromptApplyCoupon) isWizardEvent() {}
func (PromptSkip) isWizardEvent()        {}

type Wizard struct {
	coupons *CouponResolver
	charges ChargeCreator
	now     func() time.Time
	logger  *zap.Logger
}

func NewWizard(coupons *CouponResolver, charges ChargeCreator, logger *zap.Logger) *Wizard {
	return &Wizard{
		coupons: coupons,
		charges: charges,
		now:     time.Now,
		logger:  logger,
	}
}

func (w *Wizard) Start() WizardState {
	return WizardState{
		CheckoutID: uuid.New().String(),
		Step:       StepIdentity,
		Coupon:     w.coupons.NoCoupon(),
	}
}

// Handle aplica um evento. Eventos que não pertencem ao step atual são ignorados:
// o fluxo só anda para frente.
func (w *Wizard) Handle(ctx context.Context, s WizardState, ev Event) (WizardState, []Effect) {
	switch e := ev.(type) {
	case Keystroke:
		if s.Step == StepPaymentDisplay {
			return s, nil
		}
		return w.keystroke(s, e)
	case SubmitIdentity:
		if s.Step != StepIdentity {
			return s, nil
		}
		return w.submitIdentity(s, e)
	case EditConfirmation:
		if s.Step != StepCouponAndConfirm {
			return s, nil
		}
		s.FirstName = e.FirstName
		s.LastName = e.LastName
		s.ConfirmTaxID = MaskTaxID(e.TaxID)
		return s, nil
	case ApplyCoupon:
		if s.Step != StepCouponAndConfirm {
			return s, nil
		}
		return w.applyCoupon(s, e.Code, FieldCoupon)
	case RequestPix:
		if s.Step != StepCouponAndConfirm || s.PromptOpen {
			return s, nil
		}
		return w.requestPix(ctx, s)
	case PromptApplyCoupon:
		if s.Step != StepCouponAndConfirm || !s.PromptOpen {
			return s, nil
		}
		return w.promptApply(ctx, s, e.Code)
	case PromptSkip:
		if s.Step != StepCouponAndConfirm || !s.PromptOpen {
			return s, nil
		}
		s.PromptOpen = false
		s.PromptResolved = true
		next, effects := w.requestPix(ctx, s)
		return next, append([]Effect{{Kind: EffectPromptClosed}}, effects...)
	}
	return s, nil
}

// keystroke: máscara a cada tecla; só marca válido, nunca marca erro enquanto digita.
func (w *Wizard) keystroke(s WizardState, e Keystroke) (WizardState, []Effect) {
	value := e.Value
	var valid bool

	switch e.Field {
	case FieldTaxID, FieldConfirmTaxID:
		value = MaskTaxID(value)
		valid = ValidateTaxID(value)
		if e.Field == FieldConfirmTaxID && s.Step == StepCouponAndConfirm {
			s.ConfirmTaxID = value
		}
	case FieldPhone:
		value = MaskPhone(value)
		valid = ValidatePhone(value)
	case FieldName:
		valid = ValidateName(value)
	case FieldEmail:
		valid = ValidateEmail(value)
	default:
		return s, nil
	}

	effects := []Effect{{Kind: EffectFieldFormatted, Field: e.Field, Value: value}}
	if valid {
		effects = append(effects, Effect{Kind: EffectFieldValid, Field: e.Field})
	} else {
		effects = append(effects, Effect{Kind: EffectFieldCleared, Field: e.Field})
	}
	return s, effects
}

func (w *Wizard) submitIdentity(s WizardState, e SubmitIdentity) (WizardState, []Effect) {
	var effects []Effect
	invalid := func(f Field) {
		effects = append(effects, Effect{Kind: EffectFieldInvalid, Field: f})
	}

	if !ValidateName(e.FullName) {
		invalid(FieldName)
	}
	if !ValidateEmail(e.Email) {
		invalid(FieldEmail)
	}
	if !ValidateTaxID(e.TaxID) {
		invalid(FieldTaxID)
	}
	if !ValidatePhone(e.Phone) {
		invalid(FieldPhone)
	}
	if !e.Consent {
		invalid(FieldConsent)
	}
	if !e.Acknowledged {
		invalid(FieldAcknowledgement)
	}
	if len(effects) > 0 {
		return s, effects
	}

	s.Identity = entity.BuyerIdentity{
		FullName: strings.TrimSpace(e.FullName),
		Email:    strings.TrimSpace(e.Email),
		TaxID:    MaskTaxID(e.TaxID),
		Phone:    MaskPhone(e.Phone),
	}
	s.FirstName, s.LastName = SplitFullName(s.Identity.FullName)
	s.ConfirmTaxID = s.Identity.TaxID
	s.Step = StepCouponAndConfirm

	return s, []Effect{{Kind: EffectStepChanged, Step: StepCouponAndConfirm}}
}

func (w *Wizard) applyCoupon(s WizardState, code string, field Field) (WizardState, []Effect) {
	res := w.coupons.Resolve(code)

	switch res.Outcome {
	case CouponApplied:
		s.Coupon = res.State
		s.CouponField = res.State.Code
		return s, []Effect{
			{Kind: EffectFieldValid, Field: field},
			{Kind: EffectCouponApplied, Field: field, Value: res.State.Code, Message: res.Message},
		}
	case CouponRejected:
		return s, []Effect{
			{Kind: EffectFieldInvalid, Field: field},
			{Kind: EffectCouponRejected, Field: field, Message: res.Message},
		}
	default:
		return s, nil
	}
}

func (w *Wizard) promptApply(ctx context.Context, s WizardState, code string) (WizardState, []Effect) {
	next, effects := w.applyCoupon(s, code, FieldPromptCoupon)
	if !next.Coupon.Applied() {
		return next, effects
	}

	next.PromptOpen = false
	next.PromptResolved = true
	effects = append(effects, Effect{Kind: EffectPromptClosed, Message: promptAppliedLabel})

	resumed, more := w.requestPix(ctx, next)
	return resumed, append(effects, more...)
}

func (w *Wizard) requestPix(ctx context.Context, s WizardState) (WizardState, []Effect) {
	if !ValidateTaxID(s.ConfirmTaxID) {
		return s, []Effect{{Kind: EffectFieldInvalid, Field: FieldConfirmTaxID}}
	}

	if !s.Coupon.Applied() && !s.PromptResolved {
		s.PromptOpen = true
		return s, []Effect{{Kind: EffectPromptOpened}}
	}

	req := w.ChargeRequest(s)
	result, err := w.charges.CreateCharge(ctx, req)
	if err != nil {
		w.logger.Warn("falha ao gerar PIX no checkout",
			zap.String("checkout_id", s.CheckoutID),
			zap.Error(err),
		)
		return s, []Effect{{Kind: EffectAlert, Message: PixErrorMessage}}
	}

	s.Charge = result
	s.ExpiresAt = w.now().Add(PixExpiration)
	s.Step = StepPaymentDisplay

	w.logger.Info("checkout no step de pagamento",
		zap.String("checkout_id", s.CheckoutID),
		zap.String("transaction_id", result.ID),
		zap.Int64("amount", req.Amount),
	)

	return s, []Effect{{Kind: EffectStepChanged, Step: StepPaymentDisplay}}
}

// ChargeRequest monta a cobrança a partir do step 2. Sem cupom, cobra o preço de lista.
func (w *Wizard) ChargeRequest(s WizardState) entity.ChargeRequest {
	catalog := w.coupons.Catalog()

	price := catalog.ListPrice
	if s.Coupon.Applied() {
		price = s.Coupon.FinalPrice
	}
	amount := ToMinorUnits(price)

	return entity.ChargeRequest{
		Amount: amount,
		Customer: &entity.Customer{
			Name:  strings.TrimSpace(s.FirstName + " " + s.LastName),
			Email: s.Identity.Email,
			Phone: FormatPhoneForGateway(s.Identity.Phone),
			Document: &entity.Document{
				Type:   entity.DocumentTypeCPF,
				Number: OnlyDigits(s.ConfirmTaxID),
			},
		},
		Items: []entity.LineItem{{
			Title:     catalog.CourseTitle,
			Quantity:  1,
			UnitPrice: amount,
			Tangible:  false,
		}},
	}
}

// SplitFullName: primeiro token é o nome, o resto (espaço simples) é o sobrenome.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// FormatExpiration é só uma dica para a tela; o Wizard não invalida o PIX.
func FormatExpiration(t time.Time) string {
	return t.Local().Format(expirationLayout)
}
