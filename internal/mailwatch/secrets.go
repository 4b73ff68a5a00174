package mailwatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"internlink-gateway/internal/config"
)

const keyringService = "internlink"

func imapAccount(cfg config.Config) string {
	return fmt.Sprintf("internlink:imap:%s@%s", cfg.Mailwatch.Username, cfg.Mailwatch.IMAPHost)
}

// IMAPPassword reads the app password from the OS keychain; it is never
// stored in the config file.
func IMAPPassword(cfg config.Config) (string, error) {
	account := imapAccount(cfg)
	pw, err := keyring.Get(keyringService, account)
	if err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}
	return "", errors.New("IMAP password not found (set it in the keychain via the settings page)")
}

func SetIMAPPassword(cfg config.Config, password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(keyringService, imapAccount(cfg), password)
}

func DeleteIMAPPassword(cfg config.Config) error {
	return keyring.Delete(keyringService, imapAccount(cfg))
}
