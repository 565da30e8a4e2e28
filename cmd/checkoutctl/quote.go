package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierca1/pix-checkout/internal/usecase"
)

func quoteCmd(flags *globalFlags) *cobra.Command {
	var coupon string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Mostra o preço do curso, com ou sem cupom",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(flags)
			if err != nil {
				return err
			}
			resolver := usecase.NewCouponResolver(catalog)
			out := cmd.OutOrStdout()

			state := resolver.NoCoupon()
			res := resolver.Resolve(coupon)
			switch res.Outcome {
			case usecase.CouponRejected:
				return errors.New(res.Message)
			case usecase.CouponApplied:
				state = res.State
				fmt.Fprintln(out, res.Message)
			}

			fmt.Fprintf(out, "Curso:    %s\n", catalog.CourseTitle)
			fmt.Fprintf(out, "Preço:    R$ %s\n", catalog.ListPrice.StringFixed(2))
			if state.Applied() {
				fmt.Fprintf(out, "Desconto: R$ %s (%s)\n", state.Discount.StringFixed(2), state.Code)
			}
			fmt.Fprintf(out, "Total:    R$ %s (%d centavos)\n", state.FinalPrice.StringFixed(2), usecase.ToMinorUnits(state.FinalPrice))
			return nil
		},
	}

	cmd.Flags().StringVarP(&coupon, "coupon", "c", "", "código do cupom")
	return cmd
}
