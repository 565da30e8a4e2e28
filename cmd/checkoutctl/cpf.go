package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierca1/pix-checkout/internal/usecase"
)

func cpfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpf [value]",
		Short: "Formata e valida um CPF",
		Long: `Aplica a máscara 000.000.000-00 e confere os dígitos verificadores.

Exemplos:
  checkoutctl cpf 52998224725
  checkoutctl cpf 529.982.247-25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			masked := usecase.MaskTaxID(args[0])
			if !usecase.ValidateTaxID(args[0]) {
				return fmt.Errorf("CPF inválido: %s", masked)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s válido\n", masked)
			return nil
		},
	}
}
