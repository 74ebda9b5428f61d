package config

import (
	"io"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fleshka4/weighted-pool/internal/fraction"
)

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL            string        `yaml:"rpc_url"`
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CallTimeout       time.Duration `yaml:"call_timeout"`

	// ExitFeeWad is the exit fee as an 18-decimal integer, "0" when unset.
	ExitFeeWad string            `yaml:"exit_fee"`
	ExitFee    fraction.Fraction `yaml:"-"`

	LogLevel string `yaml:"log_level"`

	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

const (
	defaultTimeout     = 5 * time.Second
	defaultCallTimeout = 3 * time.Second
	defaultListenAddr  = ":1337"
	defaultLogLevel    = "info"
)

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: os.Open: %v", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	cfg, err := Parse(f)
	if err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	return cfg
}

// Parse decodes a YAML config, applies fallbacks and validates it.
func Parse(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	// Fallbacks
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = defaultCallTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.ExitFeeWad == "" {
		cfg.ExitFeeWad = "0"
	}
	if cfg.RateLimit > 0 && cfg.RateBurst <= 0 {
		cfg.RateBurst = int(cfg.RateLimit) + 1
	}

	if cfg.RPCURL == "" {
		return Config{}, errors.New("rpc_url is required in config")
	}
	if cfg.RateLimit < 0 {
		return Config{}, errors.Errorf("rate_limit must not be negative, got %v", cfg.RateLimit)
	}

	wad, ok := new(big.Int).SetString(cfg.ExitFeeWad, 10)
	if !ok {
		return Config{}, errors.Errorf("exit_fee %q is not an integer", cfg.ExitFeeWad)
	}
	cfg.ExitFee = fraction.NewBig(wad, fraction.One)
	if err := cfg.ExitFee.ValidateFee(); err != nil {
		return Config{}, errors.Wrap(err, "exit_fee")
	}

	return cfg, nil
}
