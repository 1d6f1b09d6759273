package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const ManagerLeadApiUrl = "https://manager-sl.ru/api/leads/create/"

// DefaultApiKey is the key the lead form shipped with. Prefer LEADS_API_KEY.
const DefaultApiKey = "super_secret_key_manager_sl_2026"

const (
	ConfigFileName = "config.yaml"
	TokenFileName  = "token.txt"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	ApiUrl     string
	Token      string
	Timeout    time.Duration
	LeadFile   string
	ConfigFile string
	TokenFile  string
	Debug      bool
	Quiet      bool
	Wait       bool
}

type fileConfig struct {
	ApiUrl         string `yaml:"api_url"`
	ApiKey         string `yaml:"api_key"`
	TimeoutSeconds *int   `yaml:"timeout_seconds"`
	Debug          bool   `yaml:"debug"`
}

// loadConfig resolves settings from flags, then the environment, then the YAML
// file, then token.txt for the key, then built-in defaults.
func loadConfig(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("leads-uploader", flag.ContinueOnError)
	apiUrlPointer := fs.String("apiUrl", "", "url of the lead creation API (default "+ManagerLeadApiUrl+")")
	tokenPointer := fs.String("token", "", "X-API-KEY value")
	timeoutPointer := fs.Int("timeout", -1, "request timeout in seconds, 0 disables it (default 30)")
	leadFilePointer := fs.String("leadFile", "", "path to a JSON lead, - reads stdin; empty sends the example lead")
	configFilePointer := fs.String("config", ConfigFileName, "path to a YAML config file")
	tokenFilePointer := fs.String("tokenFile", TokenFileName, "file holding the API key")
	debugPointer := fs.Bool("debug", false, "enable debug mode")
	quietPointer := fs.Bool("quiet", false, "hide the progress bar")
	waitPointer := fs.Bool("wait", false, "wait for Enter before exiting")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	fileCfg, err := readConfigFile(*configFilePointer, set["config"])
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LeadFile:   *leadFilePointer,
		ConfigFile: *configFilePointer,
		TokenFile:  *tokenFilePointer,
		Debug:      *debugPointer || fileCfg.Debug || getenv("DEBUG") == "true",
		Quiet:      *quietPointer,
		Wait:       *waitPointer,
	}

	cfg.ApiUrl = firstNonEmpty(*apiUrlPointer, getenv("LEADS_API_URL"), fileCfg.ApiUrl, ManagerLeadApiUrl)

	cfg.Token = firstNonEmpty(*tokenPointer, getenv("LEADS_API_KEY"), fileCfg.ApiKey)
	if cfg.Token == "" {
		tokenFromFile, err := getToken(cfg.TokenFile)
		if err != nil {
			return nil, err
		}
		cfg.Token = firstNonEmpty(tokenFromFile, DefaultApiKey)
	}

	switch {
	case set["timeout"]:
		cfg.Timeout = time.Duration(*timeoutPointer) * time.Second
	case getenv("LEADS_TIMEOUT") != "":
		seconds, err := strconv.Atoi(getenv("LEADS_TIMEOUT"))
		if err != nil {
			return nil, fmt.Errorf("LEADS_TIMEOUT: %w", err)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	case fileCfg.TimeoutSeconds != nil:
		cfg.Timeout = time.Duration(*fileCfg.TimeoutSeconds) * time.Second
	default:
		cfg.Timeout = DefaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.ApiUrl)
	if err != nil {
		return fmt.Errorf("api url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url %q must be an absolute http(s) url", c.ApiUrl)
	}
	if c.Token == "" {
		return errors.New("api key is required")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// readConfigFile decodes the YAML config. A missing default file is not an error;
// a missing file that was asked for explicitly is.
func readConfigFile(path string, explicit bool) (fileConfig, error) {
	var fileCfg fileConfig
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fileCfg, nil
		}
		return fileCfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return fileCfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fileCfg, nil
}

// getToken returns the last non-empty line of the token file, or "" if there is no file.
func getToken(path string) (string, error) {
	tokenFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	defer tokenFile.Close()

	var token string
	scanner := bufio.NewScanner(tokenFile)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			token = line
		}
	}
	return token, scanner.Err()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
