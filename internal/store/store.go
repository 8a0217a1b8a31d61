// Package store owns the portal's mutable collections. Views read copies through the
// accessors and change state only through the command methods.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/content"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ProtectedUsername can never be deleted.
const ProtectedUsername = "admin"

const dateLayout = "2006-01-02"

var (
	ErrNotFound      = errors.New("record not found")
	ErrProtectedUser = errors.New("user is protected from deletion")
	ErrValidation    = errors.New("invalid input")
)

type Store struct {
	mu sync.RWMutex

	users    []models.User
	products []models.Product
	news     []models.NewsItem
	jobs     []models.JobOpportunity
	media    []models.MediaItem
	reports  []models.ViolationReport
	profile  models.OrganizationProfile
	crm      models.CRMStats
	partners []models.Partner
	rates    []models.CurrencyRate

	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

type Option func(*Store)

// WithClock replaces time.Now for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New returns a store seeded with the portal's initial content.
func New(opts ...Option) *Store {
	s := &Store{
		users:    content.Users(),
		products: content.Products(),
		news:     content.News(),
		jobs:     content.Jobs(),
		media:    content.Media(),
		reports:  []models.ViolationReport{},
		profile:  content.Profile(),
		crm:      content.CRMStats(),
		partners: content.Partners(),
		rates:    content.CurrencyRates(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

func (s *Store) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return errors.Wrap(ErrValidation, err.Error())
	}
	return nil
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

func (s *Store) ProductByCode(code string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Code == code {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) News() []models.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.news)
}

func (s *Store) Jobs() []models.JobOpportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

func (s *Store) Media() []models.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.media)
}

// Reports lists submitted reports, newest first.
func (s *Store) Reports() []models.ViolationReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reports)
}

func (s *Store) Profile() models.OrganizationProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) CRMStats() models.CRMStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.crm
}

func (s *Store) Partners() []models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.partners)
}

func (s *Store) CurrencyRates() []models.CurrencyRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rates)
}
