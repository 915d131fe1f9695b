package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/efdeugenio/thynra.com/internal/entity"
	"github.com/efdeugenio/thynra.com/internal/infra/database"
	"github.com/efdeugenio/thynra.com/internal/infra/http/handlers"
	"github.com/efdeugenio/thynra.com/internal/infra/http/middleware"
	"github.com/efdeugenio/thynra.com/internal/infra/integration/automation"
	"github.com/efdeugenio/thynra.com/internal/infra/integration/paypal"
	"github.com/efdeugenio/thynra.com/internal/infra/mail"
	"github.com/efdeugenio/thynra.com/internal/infra/queue"
	"github.com/efdeugenio/thynra.com/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Repositories: Postgres when DATABASE_URL is set, in-memory otherwise.
	var db *sql.DB
	var contactRepo entity.ContactRepositoryInterface
	var bookingRepo entity.BookingRepositoryInterface

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer db.Close()

		contactRepo = database.NewContactRepository(db)
		bookingRepo = database.NewBookingRepository(db)
	} else {
		log.Println("⚠️ DATABASE_URL not set, using in-memory storage")
		contactRepo = database.NewMemoryContactRepository()
		bookingRepo = database.NewMemoryBookingRepository()
	}

	// 2. Gateways and adapters.
	gateway := paypal.NewClient(
		os.Getenv("PAYPAL_CLIENT_ID"),
		os.Getenv("PAYPAL_CLIENT_SECRET"),
		os.Getenv("PAYPAL_ENVIRONMENT"),
		getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	)

	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("rabbitmq connection failed: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var automationClient usecase.AutomationNotifier
	if webhookURL := os.Getenv("AUTOMATION_WEBHOOK_URL"); webhookURL != "" {
		automationClient = automation.NewClient(webhookURL)
	}

	var mailSender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
		mailSender = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			getEnv("MAIL_FROM", "no-reply@thynra.com"),
			getEnv("NOTIFY_EMAIL_TO", "hello@thynra.com"),
		)
	}

	// 3. Use cases.
	submitContactUC := usecase.NewSubmitContactUseCase(contactRepo, mailSender)
	submitBookingUC := usecase.NewSubmitBookingUseCase(bookingRepo, mailSender)
	submitIntakeUC := usecase.NewSubmitIntakeUseCase(gateway, producer, automationClient)

	// 4. Handlers.
	contactHandler := handlers.NewContactHandler(submitContactUC, contactRepo)
	bookingHandler := handlers.NewBookingHandler(submitBookingUC, bookingRepo)
	paypalHandler := handlers.NewPayPalHandler(gateway)
	intakeHandler := handlers.NewIntakeHandler(submitIntakeUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 5. Router.
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{getEnv("PUBLIC_BASE_URL", "*")},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/api/contact", contactHandler.Submit)
	r.Post("/api/booking", bookingHandler.Submit)
	r.Get("/api/contact-requests", contactHandler.List)
	r.Get("/api/booking-requests", bookingHandler.List)

	r.Get("/paypal/setup", paypalHandler.Setup)
	r.Post("/paypal/order", paypalHandler.CreateOrder)
	r.Post("/paypal/order/{orderID}/capture", paypalHandler.CaptureOrder)
	r.Get("/api/validate-payment", paypalHandler.ValidatePayment)

	r.Post("/api/intake-form", intakeHandler.Submit)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getEnv("PORT", "8080")
	log.Printf("🔥 Thynra API listening on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
