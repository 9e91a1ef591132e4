package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mahalo-service/internal/config"
	"mahalo-service/internal/email"
	"mahalo-service/internal/events"
	"mahalo-service/internal/relay"
	transport "mahalo-service/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

var startTime time.Time

func main() {
	startTime = time.Now()
	cfg := config.Load()
	log.Printf("🔧 MailerSend token: %s******", maskToken(cfg.MailerSendAPIToken))

	emailSender := email.NewSender(cfg)
	log.Println("✅ [EMAIL] MailerSend sender initialized")

	validate := validator.New()

	contactRelay := relay.NewContactRelay(cfg, emailSender)
	orderRelay := relay.NewOrderRelay(cfg, emailSender, validate)
	log.Println("✅ [RELAY] Contact & order relays initialized")

	popups := events.NewNormalizer(events.NewClient(cfg))
	log.Printf("🌐 [EVENTS] Content source: %s (site: %s)", cfg.WPAPIBase, cfg.WPSite)

	handler := transport.NewHandler(contactRelay, orderRelay, popups)
	log.Println("✅ [SERVICE] Handler initialized")

	app := fiber.New(fiber.Config{
		AppName:      "mahalo-service",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// CORS configuration: the forms are submitted straight from the static
	// site, so the preflight must clear with the site's headers.
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: cfg.AllowedHeaders,
		MaxAge:       86400,
	}))

	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))

	v1 := app.Group("/v1")
	v1.Post("/contact", handler.SendContactEmail)
	v1.Post("/order", handler.SendOrderEmail)
	v1.Get("/popups", handler.ListPopupEvents)
	log.Println("✅ [ROUTES] Registered /v1/contact, /v1/order, /v1/popups")

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Round(time.Second)
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "mahalo-service",
			"uptime":    uptime.String(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	log.Println("✅ [ROUTES] Registered /health")

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 [SHUTDOWN] Graceful shutdown initiated...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ [SHUTDOWN] Error: %v", err)
		}
	}()

	log.Printf("🚀 mahalo-service starting...")
	log.Printf("   🔗 Listening on port: %s", cfg.ServerPort)
	log.Printf("   🌐 CORS allowed origins: %s", cfg.AllowedOrigins)
	log.Printf("   📬 Relaying to inbox: %s", cfg.RecipientEmail)
	log.Println("✅ Server ready.")

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ [STARTUP] Server failed to start: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var errMsg string
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		errMsg = e.Message
	} else {
		errMsg = err.Error()
	}
	log.Printf("🔥 [ERROR] [%d] %s %s → %v | IP=%s | UA=%s",
		code,
		c.Method(),
		c.Path(),
		errMsg,
		c.IP(),
		c.Get("User-Agent"),
	)
	return c.Status(code).JSON(fiber.Map{
		"success":    false,
		"error":      "something went wrong",
		"request_id": c.Get("X-Request-ID"),
	})
}

func maskToken(token string) string {
	if len(token) > 6 {
		return token[:6]
	}
	return "<short>"
}
