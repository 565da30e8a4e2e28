package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/config"
	"github.com/xavierca1/pix-checkout/internal/entity"
	"github.com/xavierca1/pix-checkout/internal/infra/integration/payevo"
	"github.com/xavierca1/pix-checkout/internal/infra/logger"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	catalogPath string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "checkoutctl",
		Short:         "checkoutctl - operação do checkout PIX",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "arquivo YAML do catálogo de cupons (padrão: COUPON_CATALOG_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log detalhado")

	rootCmd.AddCommand(cpfCmd())
	rootCmd.AddCommand(quoteCmd(flags))
	rootCmd.AddCommand(pixCmd(flags))
	rootCmd.AddCommand(watchCmd(flags))

	return rootCmd
}

// app reúne o que os comandos que falam com a PayEvo precisam.
type app struct {
	cfg     *config.Config
	catalog entity.CouponCatalog
	gateway *payevo.Client
	logger  *zap.Logger
}

func loadApp(flags *globalFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(flags)
	if err != nil {
		return nil, err
	}

	logg := zap.NewNop()
	if flags.verbose {
		if logg, err = logger.New("development", "debug"); err != nil {
			return nil, err
		}
	}

	return &app{
		cfg:     cfg,
		catalog: catalog,
		gateway: payevo.NewClient(cfg.PayEvo.SecretKey, cfg.PayEvo.URL, cfg.PayEvo.Timeout),
		logger:  logg,
	}, nil
}

func loadCatalog(flags *globalFlags) (entity.CouponCatalog, error) {
	path := flags.catalogPath
	if path == "" {
		path = os.Getenv("COUPON_CATALOG_PATH")
	}
	return config.LoadCatalog(path)
}

func (a *app) resolver() *usecase.CouponResolver {
	return usecase.NewCouponResolver(a.catalog)
}
