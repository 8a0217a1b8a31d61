package auth

import (
	"github.com/RaidanPro1/CPA-YePortal/internal/config"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// AdminUsername is the only account that authenticates with a password.
const AdminUsername = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// UserDirectory finds user records by username.
type UserDirectory interface {
	UserByUsername(username string) (models.User, bool)
}

// Authenticator applies the portal's login policy.
type Authenticator struct {
	users             UserDirectory
	adminHash         string
	donorPasswordless bool
}

// NewAuthenticator prepares the policy. A plaintext admin password is hashed once here;
// with neither a password nor a hash configured the admin login stays closed.
func NewAuthenticator(users UserDirectory, cfg config.AuthConfig) (*Authenticator, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" && cfg.AdminPassword != "" {
		var err error
		hash, err = HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, errors.Wrap(err, "hash admin password")
		}
	}

	return &Authenticator{
		users:             users,
		adminHash:         hash,
		donorPasswordless: cfg.DonorPasswordless,
	}, nil
}

// AdminEnabled reports whether an admin credential is configured.
func (a *Authenticator) AdminEnabled() bool {
	return a.adminHash != ""
}

// Login resolves a username/password pair to a user record:
//
//   - "admin" with the configured password yields the admin record;
//   - any existing donor username is accepted without a password check
//     while donorPasswordless is set;
//   - everything else is ErrInvalidCredentials.
func (a *Authenticator) Login(username, password string) (models.User, error) {
	if username == AdminUsername {
		if a.adminHash == "" || CheckPassword(password, a.adminHash) != nil {
			return models.User{}, ErrInvalidCredentials
		}
		u, ok := a.users.UserByUsername(AdminUsername)
		if !ok {
			return models.User{}, ErrInvalidCredentials
		}
		return u, nil
	}

	u, ok := a.users.UserByUsername(username)
	if ok && u.Role == models.RoleDonor && a.donorPasswordless {
		return u, nil
	}

	return models.User{}, ErrInvalidCredentials
}
