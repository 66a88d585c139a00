package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"checkin-forecast/models/checkin"
)

// Run modes
const (
	MODE_RENDER = "render"
	MODE_SERVE  = "serve"
	MODE_IMPORT = "import"
)

// Check-in sources
const (
	SOURCE_FILE  = "file"
	SOURCE_REDIS = "redis"
)

// Defaults
const DEFAULT_DATA_PATH = "MarinoAccessLog.csv"
const DEFAULT_DATETIME_COLUMN = "Date Time"
const DEFAULT_FACILITY_NAME = "Marino"
const DEFAULT_HISTORY_WINDOW = "50"
const DEFAULT_DESIRED_WEEKDAYS = "Monday"
const DEFAULT_Y_AXIS_MAX = 350
const DEFAULT_OUTPUT_DIR = "charts"

// Redis Config
const DEFAULT_REDIS_ADDRESS = "localhost:6379"
const DEFAULT_REDIS_DB = 0

// Server config
const DEFAULT_HTTP_ADDRESS = ":8080"
const DEFAULT_REFRESH_INTERVAL_MINUTES = 30

// Config holds every recognized option. Values come from defaults, an
// optional YAML file and CHECKIN_* environment variables, in that order.
type Config struct {
	Mode   string `koanf:"mode"`
	Source string `koanf:"source"`

	DataPath       string `koanf:"data_path"`
	DateTimeColumn string `koanf:"datetime_column"`
	FacilityName   string `koanf:"facility_name"`

	// HistoryWindow is "unbounded" or a positive number of days.
	HistoryWindow string `koanf:"history_window"`
	// DesiredWeekdays is a comma-separated list of weekdays to render.
	DesiredWeekdays string `koanf:"desired_weekdays"`

	YAxisMax  float64 `koanf:"y_axis_max"`
	OutputDir string  `koanf:"output_dir"`

	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`

	// ImportReplace clears the facility's stored check-ins before importing.
	ImportReplace bool `koanf:"import_replace"`

	HTTPAddr               string `koanf:"http_addr"`
	RefreshIntervalMinutes int    `koanf:"refresh_interval_minutes"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// New returns a Config populated with the default values.
func New() *Config {
	return &Config{
		Mode:                   MODE_RENDER,
		Source:                 SOURCE_FILE,
		DataPath:               DEFAULT_DATA_PATH,
		DateTimeColumn:         DEFAULT_DATETIME_COLUMN,
		FacilityName:           DEFAULT_FACILITY_NAME,
		HistoryWindow:          DEFAULT_HISTORY_WINDOW,
		DesiredWeekdays:        DEFAULT_DESIRED_WEEKDAYS,
		YAxisMax:               DEFAULT_Y_AXIS_MAX,
		OutputDir:              DEFAULT_OUTPUT_DIR,
		RedisAddr:              DEFAULT_REDIS_ADDRESS,
		RedisDB:                DEFAULT_REDIS_DB,
		HTTPAddr:               DEFAULT_HTTP_ADDRESS,
		RefreshIntervalMinutes: DEFAULT_REFRESH_INTERVAL_MINUTES,
		LogLevel:               "info",
		LogFormat:              "console",
	}
}

// Window parses HistoryWindow.
func (c *Config) Window() (checkin.HistoryWindow, error) {
	return checkin.ParseHistoryWindow(c.HistoryWindow)
}

// Weekdays parses DesiredWeekdays. Duplicates are dropped, order is kept.
// "all" selects every weekday.
func (c *Config) Weekdays() ([]checkin.Weekday, error) {
	if strings.EqualFold(strings.TrimSpace(c.DesiredWeekdays), "all") {
		return checkin.AllWeekdays(), nil
	}

	seen := make(map[checkin.Weekday]struct{})
	var out []checkin.Weekday
	for _, name := range strings.Split(c.DesiredWeekdays, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		d, err := checkin.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// Validate checks the options that are not free-form strings.
func (c *Config) Validate() error {
	switch c.Mode {
	case MODE_RENDER, MODE_SERVE, MODE_IMPORT:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Source {
	case SOURCE_FILE, SOURCE_REDIS:
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	if c.DataPath == "" && (c.Source == SOURCE_FILE || c.Mode == MODE_IMPORT) {
		return fmt.Errorf("data_path must not be empty")
	}
	if strings.TrimSpace(c.DateTimeColumn) == "" {
		return fmt.Errorf("datetime_column must not be empty")
	}
	if _, err := c.Window(); err != nil {
		return err
	}
	if _, err := c.Weekdays(); err != nil {
		return err
	}
	if c.YAxisMax <= 0 {
		return fmt.Errorf("y_axis_max must be positive, got %v", c.YAxisMax)
	}
	if c.Mode == MODE_SERVE && c.RefreshIntervalMinutes < 1 {
		return fmt.Errorf("refresh_interval_minutes must be at least 1, got %d", c.RefreshIntervalMinutes)
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// ResolvePath anchors relative paths at BaseDir. URLs and absolute paths are
// returned unchanged.
func ResolvePath(path string) string {
	if IsRemote(path) || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(BaseDir(), path)
}

// IsRemote reports whether path is an http(s) URL.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
