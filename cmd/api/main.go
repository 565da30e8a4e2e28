package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/config"
	"github.com/xavierca1/pix-checkout/internal/infra/http/handlers"
	"github.com/xavierca1/pix-checkout/internal/infra/integration/payevo"
	"github.com/xavierca1/pix-checkout/internal/infra/logger"
	"github.com/xavierca1/pix-checkout/internal/infra/mail"
	"github.com/xavierca1/pix-checkout/internal/infra/queue"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}

	logg, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("erro ao criar logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		logg.Fatal("erro ao carregar catálogo de cupons", zap.Error(err))
	}

	// 1. Gateway
	gateway := payevo.NewClient(cfg.PayEvo.SecretKey, cfg.PayEvo.URL, cfg.PayEvo.Timeout)
	if !gateway.Configured() {
		logg.Warn("PAYEVO_SECRET_KEY não configurada: cobranças vão falhar com 500")
	}

	// 2. Infra opcional
	webhookUC := usecase.NewProcessWebhookUseCase(nil, nil, catalog.CourseTitle, logg)

	db := setupDatabase(ctx, cfg, logg, webhookUC)
	if db != nil {
		defer db.Close()
	}

	var rabbitConn *amqp.Connection
	if cfg.Rabbit.Enabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.Rabbit.User, cfg.Rabbit.Password, cfg.Rabbit.Host, cfg.Rabbit.Port)
		if err != nil {
			logg.Fatal("erro ao conectar no RabbitMQ", zap.Error(err))
		}
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn

		webhookUC.Queue = queue.NewProducer(rabbitMQ.Ch)

		if cfg.SMTP.Enabled() {
			mailSender := mail.NewEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
			consumerCh, err := rabbitMQ.Conn.Channel()
			if err != nil {
				logg.Fatal("erro ao abrir canal do worker", zap.Error(err))
			}
			w := queue.NewWorker(consumerCh, mailSender, logg.Named("enrollment-worker"))
			go func() {
				if err := w.Start(ctx, queue.QueueName); err != nil {
					logg.Error("worker de matrícula parou", zap.Error(err))
				}
			}()
		} else {
			logg.Warn("MAIL_HOST não configurado: matrículas ficam na fila sem envio de email")
		}
	}

	// 3. UseCases
	createChargeUC := usecase.NewCreateChargeUseCase(gateway, logg)
	checkPaymentUC := usecase.NewCheckPaymentUseCase(gateway, logg)

	// 4. Handlers
	router := handlers.NewRouter(handlers.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logg,
		Pix:            handlers.NewPixHandler(createChargeUC, logg),
		CheckPayment:   handlers.NewCheckPaymentHandler(checkPaymentUC, logg),
		Webhook:        handlers.NewWebhookHandler(webhookUC, logg),
		Health:         handlers.NewHealthHandler(db, rabbitConn, gateway, version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// maior que o timeout da PayEvo
		WriteTimeout: 45 * time.Second,
	}

	go func() {
		logg.Info("servidor de checkout rodando", zap.String("port", cfg.Server.Port), zap.String("course", catalog.CourseTitle))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("erro no servidor HTTP", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("erro no shutdown", zap.Error(err))
	}
}
