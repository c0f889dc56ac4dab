package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-duobit/utils/endian"
)

// Config aggregates everything a command needs.
type Config struct {
	Buffer  BufferConfig
	Logging LoggingConfig
	Sentry  SentryConfig
}

type BufferConfig struct {
	Capacity int
	Masked   bool
	Order    string
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
}

type SentryConfig struct {
	DSN string
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Buffer: BufferConfig{
			Capacity: d.Buffer.Capacity,
			Masked:   d.Buffer.Masked,
			Order:    d.Buffer.Order,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI flag overrides.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Buffer.Capacity <= 0 {
		result = multierror.Append(result, fmt.Errorf("buffer capacity must be positive, got %d", c.Buffer.Capacity))
	}
	if _, err := endian.ParseOrder(c.Buffer.Order); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 5 {
		result = multierror.Append(result, fmt.Errorf("log verbosity %d outside [0, 5]", c.Logging.Verbosity))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return result.ErrorOrNil()
}

// ByteOrder returns the parsed buffer byte order.
func (c *Config) ByteOrder() endian.Order {
	order, _ := endian.ParseOrder(c.Buffer.Order)
	return order
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	var lineErr *toml.LineError
	if errors.As(err, &lineErr) {
		err = errors.New(path + ", " + err.Error())
	}
	return err
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("capacity") {
		cfg.Buffer.Capacity = ctx.Int("capacity")
	}
	if ctx.IsSet("masked") {
		cfg.Buffer.Masked = ctx.Bool("masked")
	}
	if ctx.IsSet("order") {
		cfg.Buffer.Order = ctx.String("order")
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}

	if ctx.IsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.String("sentry.dsn")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
