// internal/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// MailerSend
	MailerSendAPIToken string

	// Email identities
	SenderEmail     string
	SenderName      string
	ContactFormName string
	RecipientEmail  string
	RecipientName   string
	OrdersName      string

	// WordPress content source (public, not secret)
	WPAPIBase string
	WPSite    string

	// CORS
	AllowedOrigins string
	AllowedHeaders string
}

func Load() *Config {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load() // optional .env for local
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8086"
	}

	token := os.Getenv("MAILERSEND_API_TOKEN")
	if token == "" {
		log.Fatalf("❌ MAILERSEND_API_TOKEN is not configured — refusing to start without an email credential")
	}

	return &Config{
		ServerPort: port,

		MailerSendAPIToken: token,

		SenderEmail:     getEnv("SENDER_EMAIL", "noreply@mahalomorningskc.com"),
		SenderName:      getEnv("SENDER_NAME", "Mahalo Mornings"),
		ContactFormName: getEnv("CONTACT_FORM_NAME", "Mahalo Mornings Contact Form"),
		RecipientEmail:  getEnv("RECIPIENT_EMAIL", "mahalomorningskc@gmail.com"),
		RecipientName:   getEnv("RECIPIENT_NAME", "Mahalo Mornings KC"),
		OrdersName:      getEnv("ORDERS_NAME", "Mahalo Mornings Orders"),

		WPAPIBase: getEnv("WP_API_BASE", "https://public-api.wordpress.com"),
		WPSite:    getEnv("WP_SITE", "mahalomornings.wordpress.com"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		AllowedHeaders: getEnv("ALLOWED_HEADERS", "Authorization,X-Client-Info,Apikey,Content-Type"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
