package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Backend kinds
const (
	BackendMemory = "memory"
	BackendREST   = "rest"
)

type (
	ServerConfig struct {
		Address        string
		DisableReqLogs bool
	}

	// BackendConfig points to the school REST backend that owns fee records.
	BackendConfig struct {
		Kind    string // memory | rest
		BaseURL string
		Token   string
		Timeout time.Duration
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		RollbarToken string
		Server       ServerConfig
		Backend      BackendConfig
	}
)

// NewConfig reads the configuration from defaults, the optional config/.env.<env> file and the environment.
// Variables are prefixed by the environment name, eg. DEV_BACKEND_BASEURL.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "SchoolFees")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("backend.kind", BackendMemory)
	v.SetDefault("backend.baseURL", "http://localhost:3000/api")
	v.SetDefault("backend.token", "")
	v.SetDefault("backend.timeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(configDir(), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:        v.GetString("server.address"),
			DisableReqLogs: v.GetBool("server.disableReqLogs"),
		},
		Backend: BackendConfig{
			Kind:    strings.ToLower(v.GetString("backend.kind")),
			BaseURL: strings.TrimRight(v.GetString("backend.baseURL"), "/"),
			Token:   v.GetString("backend.token"),
			Timeout: v.GetDuration("backend.timeout"),
		},
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	var flds []FieldError
	switch c.Backend.Kind {
	case BackendMemory:
	case BackendREST:
		if c.Backend.BaseURL == "" {
			flds = append(flds, FieldError{Field: "backend.baseURL", Error: "required with the rest backend"})
		}
	default:
		flds = append(flds, FieldError{Field: "backend.kind", Error: "must be one of memory, rest"})
	}
	if c.Backend.Timeout <= 0 {
		flds = append(flds, FieldError{Field: "backend.timeout", Error: "must be positive"})
	}
	if c.Server.Address == "" {
		flds = append(flds, FieldError{Field: "server.address", Error: "this field is required"})
	}
	if flds != nil {
		return NewValidationError(errors.New("invalid configuration"), flds...)
	}
	return nil
}

// configDir returns $CONFIG_DIR, or the "config" directory of the project root (the closest parent holding go.mod).
// go-test changes the working directory to the package being tested, hence the lookup.
func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "config"
	}
	for currDir := wd; ; {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return filepath.Join(currDir, "config")
		}
		newDir := filepath.Dir(currDir)
		if newDir == currDir {
			return filepath.Join(wd, "config")
		}
		currDir = newDir
	}
}
