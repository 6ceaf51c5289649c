// Package config handles configuration for the bookkeeping client,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// RelayKind selects the cloud transport implementation.
const (
	RelayKindHTTP = "http"
	RelayKindS3   = "s3"
)

// Config holds runtime settings for the lava-rapido client.
//
// Fields:
//   - DataDir: directory for the local durability database.
//   - RelayKind: "http" (objects API) or "s3" (S3-compatible backend).
//   - RelayBaseURL: base URL of the objects relay (http kind).
//   - RelayName: logical snapshot name shared by all devices of one shop.
//   - Origin: identifier of this device, recorded on every snapshot.
//   - PollInterval: how often the client pulls the relay for newer snapshots.
//   - PreferCloud: hydrate from the relay on startup even when a local copy exists.
//   - SecretKey: HMAC secret for signing session JWTs (HS256).
//   - TokenValidity: session token lifetime.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings (s3 kind).
type Config struct {
	DataDir        string
	RelayKind      string
	RelayBaseURL   string
	RelayName      string
	Origin         string
	PollInterval   time.Duration
	PreferCloud    bool
	SecretKey      string
	TokenValidity  time.Duration
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: The secret key is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.DataDir = "./data"
	c.RelayKind = RelayKindHTTP
	c.RelayBaseURL = "http://127.0.0.1:8080"
	c.RelayName = "lavarapido"
	c.Origin = ""
	c.PollInterval = 10 * time.Second
	c.PreferCloud = false
	c.SecretKey = "secretKey"
	c.TokenValidity = 12 * time.Hour
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "snapshots"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
