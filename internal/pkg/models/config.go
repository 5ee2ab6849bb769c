package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	Admin  AdminConfig
	SMTP   SMTPConfig
	Client ClientConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig contains MongoDB connection configuration.
// An empty URI selects the in-memory credential store.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // connect timeout in seconds
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in hours
	Issuer     string
}

// AdminConfig contains the bootstrap admin account
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// SMTPConfig contains the outbound email provider configuration.
// An empty host or from-address selects the console-log fallback.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ClientConfig contains the public-facing client base URL used in emails
type ClientConfig struct {
	BaseURL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
