package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xavierca1/pix-checkout/internal/usecase"
)

type pixFlags struct {
	name     string
	email    string
	cpf      string
	phone    string
	coupon   string
	accepted bool
}

func pixCmd(flags *globalFlags) *cobra.Command {
	pf := &pixFlags{}

	cmd := &cobra.Command{
		Use:   "pix",
		Short: "Percorre o checkout completo e gera um PIX na PayEvo",
		Long: `Executa os três passos do checkout: identificação, cupom/confirmação e PIX.

Exemplo:
  checkoutctl pix --name "Maria Silva" --email maria@example.com \
    --cpf 529.982.247-25 --phone 11987654321 --coupon SELECIONADON3 --accept`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			charges := usecase.NewCreateChargeUseCase(a.gateway, a.logger)
			wizard := usecase.NewWizard(a.resolver(), charges, a.logger)
			return runPix(ctx, cmd.OutOrStdout(), wizard, pf)
		},
	}

	cmd.Flags().StringVar(&pf.name, "name", "", "nome completo")
	cmd.Flags().StringVar(&pf.email, "email", "", "email")
	cmd.Flags().StringVar(&pf.cpf, "cpf", "", "CPF")
	cmd.Flags().StringVar(&pf.phone, "phone", "", "telefone com DDD")
	cmd.Flags().StringVarP(&pf.coupon, "coupon", "c", "", "código do cupom")
	cmd.Flags().BoolVar(&pf.accepted, "accept", false, "aceita os termos e confirma a ciência do edital")
	for _, name := range []string{"name", "email", "cpf", "phone"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}

// runPix conduz o Wizard sem interação: o popup de cupom é sempre pulado.
func runPix(ctx context.Context, out io.Writer, wizard *usecase.Wizard, pf *pixFlags) error {
	state := wizard.Start()

	events := []usecase.Event{
		usecase.SubmitIdentity{
			FullName:     pf.name,
			Email:        pf.email,
			TaxID:        pf.cpf,
			Phone:        pf.phone,
			Consent:      pf.accepted,
			Acknowledged: pf.accepted,
		},
	}
	if pf.coupon != "" {
		events = append(events, usecase.ApplyCoupon{Code: pf.coupon})
	}
	events = append(events, usecase.RequestPix{})

	for _, ev := range events {
		var effects []usecase.Effect
		state, effects = wizard.Handle(ctx, state, ev)
		if err := reportEffects(out, effects); err != nil {
			return err
		}
		if state.PromptOpen {
			state, effects = wizard.Handle(ctx, state, usecase.PromptSkip{})
			if err := reportEffects(out, effects); err != nil {
				return err
			}
		}
	}

	if state.Step != usecase.StepPaymentDisplay || state.Charge == nil {
		return errors.New("checkout não chegou ao passo de pagamento")
	}

	charge := state.Charge
	fmt.Fprintf(out, "Transação: %s (%s)\n", charge.ID, charge.Status)
	fmt.Fprintf(out, "Valor:     R$ %s\n", chargeTotal(wizard, state))
	fmt.Fprintf(out, "Expira em: %s\n", usecase.FormatExpiration(state.ExpiresAt))
	fmt.Fprintf(out, "QR Code:   %s\n", charge.Pix.ImageURL())
	fmt.Fprintf(out, "\nPIX copia e cola:\n%s\n", charge.Pix.QRCode)
	return nil
}

func chargeTotal(wizard *usecase.Wizard, state usecase.WizardState) string {
	req := wizard.ChargeRequest(state)
	return fmt.Sprintf("%d,%02d", req.Amount/100, req.Amount%100)
}

func reportEffects(out io.Writer, effects []usecase.Effect) error {
	var invalid []string
	for _, e := range effects {
		switch e.Kind {
		case usecase.EffectFieldInvalid:
			invalid = append(invalid, string(e.Field))
		case usecase.EffectCouponApplied:
			fmt.Fprintln(out, e.Message)
		case usecase.EffectCouponRejected, usecase.EffectAlert:
			return errors.New(e.Message)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("campos inválidos: %s", strings.Join(invalid, ", "))
	}
	return nil
}
