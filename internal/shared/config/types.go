// Package config defines the typed configuration sections consumed by the
// viper loader in internal/infrastructure/config.
package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // mysql or sqlite
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"` // sqlite file path
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	BcryptCost       int    `mapstructure:"bcrypt_cost"`
	JWTSecret        string `mapstructure:"jwt_secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
	CookieDomain     string `mapstructure:"cookie_domain"`
	CookieSecure     bool   `mapstructure:"cookie_secure"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type MediaConfig struct {
	Root              string `mapstructure:"root"`          // media root directory
	MaxUploadMB       int    `mapstructure:"max_upload_mb"` // per-file limit
	MaxFilesPerTicket int    `mapstructure:"max_files_per_ticket"`
}

// SiteConfig holds the static fallback values for the public site context.
// A single database row may override them field by field.
type SiteConfig struct {
	Name               string `mapstructure:"name"`
	Tagline            string `mapstructure:"tagline"`
	WhatsAppNumber     string `mapstructure:"whatsapp_number"`
	ContactPhone       string `mapstructure:"contact_phone"`
	ContactEmail       string `mapstructure:"contact_email"`
	AddressText        string `mapstructure:"address_text"`
	GoogleMapsEmbedURL string `mapstructure:"google_maps_embed_url"`
}

type BusinessConfig struct {
	Timezone string `mapstructure:"timezone"`
}
