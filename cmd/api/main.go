package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lembrete-consorcio/internal/config"
	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/http/handlers"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/http/middleware"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/integration/gate"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/integration/whatsapp"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/mail"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/queue"
	"github.com/xavierca1/lembrete-consorcio/internal/logcapture"
	"github.com/xavierca1/lembrete-consorcio/internal/notify"
	"github.com/xavierca1/lembrete-consorcio/internal/reminder"
	"github.com/xavierca1/lembrete-consorcio/internal/storage"
	"github.com/xavierca1/lembrete-consorcio/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	capture := logcapture.New(cfg.LogBufferSize)
	capture.Start()
	defer capture.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	kv := openStorage(cfg)

	// 2. Fila de notificações (opcional: sem ela os lembretes seguem
	// funcionando na interface, só não notificam fora do app)
	var rabbitMQ *queue.RabbitMQ
	var producer queue.ProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, seguindo sem notificações externas: %v", err)
		rabbitMQ = nil
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// 3. Stores
	leadStore := store.NewLeadStore(ctx, kv)
	boletoStore := store.NewBoletoStore(ctx, kv)

	// 4. Pollers de lembrete
	notifier := notify.NewNotifier(producer)

	leadPoller := reminder.NewPoller(reminder.Config[entity.Lead]{
		Interval: cfg.PollInterval,
		Eligible: reminder.LeadEligible,
		DueAt:    reminder.LeadDueAt,
		OnShow: func(lead entity.Lead) {
			middleware.RecordReminderTriggered("lead")
			notifier.LeadDue(lead)
		},
	})
	boletoPoller := reminder.NewPoller(reminder.Config[entity.ClientBoleto]{
		Interval: cfg.PollInterval,
		Eligible: reminder.BoletoEligible,
		DueAt:    reminder.BoletoDueAt,
		OnShow: func(boleto entity.ClientBoleto) {
			middleware.RecordReminderTriggered("boleto")
			notifier.BoletoDue(boleto)
		},
	})

	// Cada mutação empurra a lista nova para o poller correspondente.
	leadStore.OnChange(leadPoller.SetRecords)
	boletoStore.OnChange(boletoPoller.SetRecords)

	go leadPoller.Start(ctx)
	go boletoPoller.Start(ctx)

	// 5. Worker de notificações (consome a fila e dispara WhatsApp/email)
	if rabbitMQ != nil {
		mailSender := mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
			cfg.MailFrom, cfg.MailUser,
		)
		worker := queue.NewWorker(rabbitMQ.Ch, whatsapp.NewClient(), mailSender)
		go worker.Start(ctx, queue.QueueName)
	}

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(leadStore)
	boletoHandler := handlers.NewBoletoHandler(boletoStore)
	leadReminderHandler := handlers.NewReminderHandler(leadPoller, "lead")
	boletoReminderHandler := handlers.NewReminderHandler(boletoPoller, "boleto")
	healthHandler := handlers.NewHealthHandler(kv, rabbitConn(rabbitMQ), cfg.GateURL)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(capture)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/snooze-options", snoozeOptionsHandler)
	r.Get("/diagnostics/logs", diagnosticsHandler.HandleLogs)
	r.Delete("/diagnostics/logs", diagnosticsHandler.HandleClear)

	r.Group(func(r chi.Router) {
		// Gate de acesso: só entra quem o serviço remoto aprovar.
		if cfg.GateURL != "" {
			gateClient := gate.NewClient(cfg.GateAPIKey, cfg.GateURL)
			access := middleware.NewAccess(gateClient, cfg.JWTSecret)
			r.Use(access.Handler)

			accountHandler := handlers.NewAccountHandler(gateClient)
			r.Get("/me/profile", accountHandler.HandleGetProfile)
			r.Post("/me/profile", accountHandler.HandleSaveProfile)
			r.Post("/me/approval/request", accountHandler.HandleRequestApproval)
			r.Get("/me/payment-proofs", accountHandler.HandleListProofs)
			r.Post("/me/payment-proofs", accountHandler.HandleSubmitProof)

			adminHandler := handlers.NewAdminHandler(gateClient)
			r.Get("/admin/approvals", adminHandler.HandleListApprovals)
			r.Post("/admin/approvals/{principal}", adminHandler.HandleSetApproval)
			r.Post("/admin/payment-proofs/{id}/status", adminHandler.HandleUpdateProofStatus)
			r.Get("/admin/paywall", adminHandler.HandlePaywall)
		} else {
			log.Println("⚠️ GATE_URL não configurado: API rodando sem gate de acesso")
		}

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.HandleList)
			r.Post("/", leadHandler.HandleCreate)
			r.Get("/reminder", leadReminderHandler.HandleActive)
			r.Post("/reminder/dismiss", leadReminderHandler.HandleDismiss)
			r.Get("/{id}", leadHandler.HandleGet)
			r.Put("/{id}", leadHandler.HandleUpdate)
			r.Delete("/{id}", leadHandler.HandleDelete)
			r.Post("/{id}/snooze", leadHandler.HandleSnooze)
			r.Post("/{id}/complete", leadHandler.HandleComplete)
		})

		r.Route("/boletos", func(r chi.Router) {
			r.Get("/", boletoHandler.HandleList)
			r.Post("/", boletoHandler.HandleCreate)
			r.Get("/buckets", boletoHandler.HandleBuckets)
			r.Get("/metrics", boletoHandler.HandleMetrics)
			r.Get("/reminder", boletoReminderHandler.HandleActive)
			r.Post("/reminder/dismiss", boletoReminderHandler.HandleDismiss)
			r.Get("/{id}", boletoHandler.HandleGet)
			r.Put("/{id}", boletoHandler.HandleUpdate)
			r.Delete("/{id}", boletoHandler.HandleDelete)
			r.Post("/{id}/snooze", boletoHandler.HandleSnooze)
			r.Post("/{id}/sent", boletoHandler.HandleMarkSent)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🔥 Lembrete Consórcio rodando na porta :%s (storage=%s)", cfg.Port, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Servidor HTTP caiu: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️ Encerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

func openStorage(cfg config.Config) storage.KV {
	switch cfg.StorageDriver {
	case "redis":
		kv, err := storage.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("❌ Falha ao conectar no Redis: %v", err)
		}
		return kv

	case "postgres":
		db, err := storage.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
		}
		kv, err := storage.NewPostgresKV(db)
		if err != nil {
			log.Fatalf("❌ Falha ao preparar tabela kv_store: %v", err)
		}
		return kv

	case "memory":
		return storage.NewMemoryKV()

	default:
		kv, err := storage.NewFileKV(cfg.DataDir)
		if err != nil {
			log.Fatalf("❌ Falha ao preparar diretório de dados: %v", err)
		}
		return kv
	}
}

func rabbitConn(r *queue.RabbitMQ) *amqp.Connection {
	if r == nil {
		return nil
	}
	return r.Conn
}
