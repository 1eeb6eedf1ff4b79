package cfg

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type AccountType string

const (
	IMAP    AccountType = "imap"
	MAILDIR AccountType = "maildir"
	MEMORY  AccountType = "memory"
)

type Config struct {
	Accounts map[string]Account `yaml:"accounts"`
}

type Account struct {
	Type                AccountType `yaml:"type"`
	ServerURL           string      `yaml:"serverURL"`
	Username            string      `yaml:"username"`
	Password            string      `yaml:"password"`
	Root                string      `yaml:"root"`
	NoTLS               bool        `yaml:"noTLS"`
	SkipTLSVerification bool        `yaml:"skipTLSVerification"`
	CommandsPerSecond   float64     `yaml:"commandsPerSecond"`
}

func newConfig() *Config {
	return &Config{}
}

// LoadFromFile loads the configuration from the file
func LoadFromFile(fileName string) (*Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	return loadConfig(file)
}

// loadConfig from a io.ReadCloser
func loadConfig(reader io.ReadCloser) (*Config, error) {
	defer reader.Close()
	decoder := yaml.NewDecoder(reader)
	config := newConfig()
	err := decoder.Decode(config)
	if err != nil {
		return nil, err
	}
	err = validateConfiguration(config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfiguration(config *Config) error {
	for name, account := range config.Accounts {
		switch account.Type {
		case IMAP:
			if account.ServerURL == "" || account.Username == "" || account.Password == "" {
				return fmt.Errorf("account %q: serverURL, username and password are needed for an imap account", name)
			}
		case MAILDIR:
			if account.Root == "" {
				return fmt.Errorf("account %q: root is needed for a maildir account", name)
			}
		case MEMORY:
			// nothing to validate
		default:
			return fmt.Errorf("account %q: unsupported account type %q", name, account.Type)
		}
	}
	return nil
}
