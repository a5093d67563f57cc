// Package config builds the single runtime configuration passed into every
// component constructor at startup.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CheckoutProviderStripe      = "stripe"
	CheckoutProviderMercadoPago = "mercadopago"
)

type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Log         LogConfig
	AWS         AWSConfig
	DynamoDB    DynamoDBConfig
	Storage     StorageConfig
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig
	Payments    PaymentsConfig
	Scrapfly    ScrapflyConfig
	Instagram   InstagramConfig
	JWT         JWTConfig
}

type AppConfig struct {
	Env          string
	Port         string
	ServerURL    string
	FrontendURL  string
	ExtraOrigins []string
}

// AllowedOrigins lists the browser origins allowed to call the API: the
// storefront, the CMS itself and any CORS_ALLOWED_ORIGINS entries.
func (a AppConfig) AllowedOrigins() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range append([]string{a.FrontendURL, a.ServerURL}, a.ExtraOrigins...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type DynamoDBConfig struct {
	Endpoint         string
	AutoCreateTables bool
	Tables           TableNames
}

// TableNames holds the DynamoDB table name per aggregate.
type TableNames struct {
	FetchLogs      string
	FetchClaims    string
	InstagramPosts string
	Media          string
	Products       string
	Orders         string
	Counters       string
	Artists        string
	NewsArticles   string
	FAQItems       string
}

type StorageConfig struct {
	Bucket           string
	Endpoint         string
	UsePathStyle     bool
	AutoCreateBucket bool
	DownloadTimeout  time.Duration
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type MercadoPagoConfig struct {
	AccessToken     string
	NotificationURL string
}

type PaymentsConfig struct {
	Mock             bool
	CheckoutProvider string
}

type ScrapflyConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type InstagramConfig struct {
	AppID                string
	DefaultUsername      string
	FetchClaimStaleAfter time.Duration
}

type JWTConfig struct {
	Secret    string
	AdminRole string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:          v.GetString("APP_ENV"),
			Port:         v.GetString("PORT"),
			ServerURL:    strings.TrimRight(v.GetString("PAYLOAD_PUBLIC_SERVER_URL"), "/"),
			FrontendURL:  strings.TrimRight(v.GetString("FRONTEND_URL"), "/"),
			ExtraOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		DynamoDB: DynamoDBConfig{
			Endpoint:         v.GetString("DYNAMODB_ENDPOINT"),
			AutoCreateTables: v.GetBool("DYNAMODB_AUTO_CREATE_TABLES"),
			Tables: TableNames{
				FetchLogs:      v.GetString("FETCH_LOGS_TABLE"),
				FetchClaims:    v.GetString("FETCH_CLAIMS_TABLE"),
				InstagramPosts: v.GetString("INSTAGRAM_POSTS_TABLE"),
				Media:          v.GetString("MEDIA_TABLE"),
				Products:       v.GetString("PRODUCTS_TABLE"),
				Orders:         v.GetString("ORDERS_TABLE"),
				Counters:       v.GetString("COUNTERS_TABLE"),
				Artists:        v.GetString("ARTISTS_TABLE"),
				NewsArticles:   v.GetString("NEWS_ARTICLES_TABLE"),
				FAQItems:       v.GetString("FAQ_ITEMS_TABLE"),
			},
		},
		Storage: StorageConfig{
			Bucket:           v.GetString("S3_BUCKET"),
			Endpoint:         v.GetString("S3_ENDPOINT"),
			UsePathStyle:     v.GetBool("S3_USE_PATH_STYLE"),
			AutoCreateBucket: v.GetBool("S3_AUTO_CREATE_BUCKET"),
			DownloadTimeout:  v.GetDuration("MEDIA_DOWNLOAD_TIMEOUT"),
		},
		Stripe: StripeConfig{
			SecretKey:     v.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			NotificationURL: v.GetString("MERCADOPAGO_NOTIFICATION_URL"),
		},
		Payments: PaymentsConfig{
			Mock:             isMockFlag(v.GetString("PAYMENT_GATEWAY_MOCK")) || isMockFlag(v.GetString("MERCADOPAGO_MOCK")),
			CheckoutProvider: strings.ToLower(strings.TrimSpace(v.GetString("CHECKOUT_PROVIDER"))),
		},
		Scrapfly: ScrapflyConfig{
			APIKey:  v.GetString("SCRAPFLY_API_KEY"),
			BaseURL: strings.TrimRight(v.GetString("SCRAPFLY_BASE_URL"), "/"),
			Timeout: v.GetDuration("SCRAPFLY_TIMEOUT"),
		},
		Instagram: InstagramConfig{
			AppID:                v.GetString("INSTAGRAM_APP_ID"),
			DefaultUsername:      strings.TrimSpace(v.GetString("INSTAGRAM_USERNAME_TO_SCRAPE")),
			FetchClaimStaleAfter: v.GetDuration("FETCH_CLAIM_STALE_AFTER"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			AdminRole: strings.TrimSpace(v.GetString("JWT_ADMIN_ROLE")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("PAYLOAD_PUBLIC_SERVER_URL", "http://localhost:8080")
	v.SetDefault("FRONTEND_URL", "http://localhost:3001")
	v.SetDefault("HTTP_READ_TIMEOUT", "30s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "5m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")

	v.SetDefault("FETCH_LOGS_TABLE", "fetch_logs")
	v.SetDefault("FETCH_CLAIMS_TABLE", "fetch_claims")
	v.SetDefault("INSTAGRAM_POSTS_TABLE", "instagram_posts")
	v.SetDefault("MEDIA_TABLE", "media")
	v.SetDefault("PRODUCTS_TABLE", "products")
	v.SetDefault("ORDERS_TABLE", "orders")
	v.SetDefault("COUNTERS_TABLE", "counters")
	v.SetDefault("ARTISTS_TABLE", "artists")
	v.SetDefault("NEWS_ARTICLES_TABLE", "news_articles")
	v.SetDefault("FAQ_ITEMS_TABLE", "faq_items")

	v.SetDefault("S3_BUCKET", "festival-media")
	v.SetDefault("MEDIA_DOWNLOAD_TIMEOUT", "30s")

	v.SetDefault("CHECKOUT_PROVIDER", CheckoutProviderStripe)

	v.SetDefault("SCRAPFLY_BASE_URL", "https://api.scrapfly.io")
	v.SetDefault("SCRAPFLY_TIMEOUT", "90s")

	v.SetDefault("INSTAGRAM_APP_ID", "936619743392459")
	v.SetDefault("FETCH_CLAIM_STALE_AFTER", "15m")

	v.SetDefault("JWT_ADMIN_ROLE", "admin")
}

func (c *Config) validate() error {
	switch c.Payments.CheckoutProvider {
	case CheckoutProviderStripe, CheckoutProviderMercadoPago:
	default:
		return fmt.Errorf("invalid CHECKOUT_PROVIDER %q: expected %s or %s", c.Payments.CheckoutProvider, CheckoutProviderStripe, CheckoutProviderMercadoPago)
	}
	if c.Instagram.FetchClaimStaleAfter <= 0 {
		return fmt.Errorf("FETCH_CLAIM_STALE_AFTER must be positive")
	}
	if c.App.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// StripeEnabled reports whether a Stripe secret key is configured.
func (c *Config) StripeEnabled() bool {
	return c.Stripe.SecretKey != ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isMockFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
