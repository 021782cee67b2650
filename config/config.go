package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/trips"
)

// Config holds command line, environment and file settings.
type Config struct {
	DataDir     string
	ConfigPath  string
	DebugLog    string
	ShowVersion bool
	SQLiteTable string
	Sources     map[string]string // city → source identifier overrides

	// Initial values for the selection drawer.
	Cities string
	Months string
	Days   string
}

type fileConfig struct {
	DataDir     string            `yaml:"data_dir"`
	SQLiteTable string            `yaml:"sqlite_table"`
	Sources     map[string]string `yaml:"sources"`
}

const (
	defaultDataDir    = "."
	defaultConfigPath = "bikeshare.yaml"
	defaultSelection  = "all"
)

// Load reads flags from args, then fills gaps from the environment (a .env
// file is honoured) and the optional YAML config file. Flags win over the
// environment, which wins over the file.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var cfg Config
	fs.StringVar(&cfg.DebugLog, "debug", "", "Write Debug Logs to file")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	fs.StringVar(&cfg.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "directory holding the city sources")
	fs.StringVar(&cfg.Cities, "city", defaultSelection, "cities, comma separated, or all")
	fs.StringVar(&cfg.Months, "month", defaultSelection, "months (january-june), comma separated, or all")
	fs.StringVar(&cfg.Days, "day", defaultSelection, "days of week, comma separated, or all")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	explicitConfig := cfg.ConfigPath != "" || os.Getenv("BIKESHARE_CONFIG") != ""
	cfg.ConfigPath = firstNonEmpty(cfg.ConfigPath, os.Getenv("BIKESHARE_CONFIG"), defaultConfigPath)

	fileCfg, err := loadFileConfig(cfg.ConfigPath)
	if err != nil {
		if explicitConfig || !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config load failed (%s): %w", cfg.ConfigPath, err)
		}
		logging.Debugf("config: no file at %s (using defaults)", cfg.ConfigPath)
	}

	cfg.DataDir = firstNonEmpty(cfg.DataDir, os.Getenv("BIKESHARE_DATA_DIR"), fileCfg.DataDir, defaultDataDir)
	cfg.SQLiteTable = firstNonEmpty(os.Getenv("BIKESHARE_SQLITE_TABLE"), fileCfg.SQLiteTable, trips.DefaultSQLiteTable)
	cfg.Sources = fileCfg.Sources

	if _, err := cfg.Catalog(); err != nil {
		return cfg, fmt.Errorf("config sources: %w", err)
	}

	logging.Infof("config: data_dir=%s config=%s sources=%d", cfg.DataDir, cfg.ConfigPath, len(cfg.Sources))
	return cfg, nil
}

// Catalog builds the city catalog with any configured source overrides.
func (c Config) Catalog() (trips.Catalog, error) {
	return trips.NewCatalog(c.Sources)
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Usage describes the command line.
func Usage() string {
	return `Usage: bikeshare [--debug debug.log] [--config bikeshare.yaml] [--data-dir DIR]
                 [--city chicago,washington] [--month january,june] [--day monday]`
}
