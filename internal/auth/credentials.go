package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/MoniqueRon/esim-dashboard/internal/config"
)

// ErrInvalidCredentials is returned when the operator login does not match
// the configured dashboard credentials.
var ErrInvalidCredentials = errors.New("invalid dashboard credentials")

// CredentialChecker verifies operator logins against configured values.
type CredentialChecker struct {
	username       string
	password       string
	passwordBcrypt string
}

// NewCredentialChecker builds a checker from dashboard config.
func NewCredentialChecker(cfg config.DashboardConfig) *CredentialChecker {
	return &CredentialChecker{
		username:       cfg.Username,
		password:       cfg.Password,
		passwordBcrypt: cfg.PasswordBcrypt,
	}
}

// Verify compares the supplied credentials against configuration. The plain
// password path uses a constant-time compare; when a bcrypt hash is
// configured it wins over the plain value. Unconfigured credentials never
// match, so an empty environment cannot become an open door.
func (cc *CredentialChecker) Verify(username, password string) error {
	if cc.username == "" || (cc.password == "" && cc.passwordBcrypt == "") {
		return ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cc.username)) == 1

	var passOK bool
	if cc.passwordBcrypt != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(cc.passwordBcrypt), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(cc.password)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
