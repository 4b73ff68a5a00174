package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Addr    string `yaml:"addr" json:"addr"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Remote struct {
		BaseURL        string  `yaml:"base_url" json:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec" json:"rate_per_sec"`
		RateBurst      int     `yaml:"rate_burst" json:"rate_burst"`
	} `yaml:"remote" json:"remote"`

	Signup struct {
		// Student registrations must use an email under this suffix.
		StudentEmailSuffix string `yaml:"student_email_suffix" json:"student_email_suffix"`
		// Max verification document size accepted before upload (bytes).
		MaxDocumentBytes int64 `yaml:"max_document_bytes" json:"max_document_bytes"`
	} `yaml:"signup" json:"signup"`

	Mailwatch struct {
		Enabled      bool   `yaml:"enabled" json:"enabled"`
		IMAPHost     string `yaml:"imap_host" json:"imap_host"`
		IMAPPort     int    `yaml:"imap_port" json:"imap_port"`
		Username     string `yaml:"username" json:"username"`
		PollSeconds  int    `yaml:"poll_seconds" json:"poll_seconds"`
		SenderFilter string `yaml:"sender_filter" json:"sender_filter"`
	} `yaml:"mailwatch" json:"mailwatch"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
