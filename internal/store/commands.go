package store

import (
	"slices"

	"github.com/RaidanPro1/CPA-YePortal/internal/content"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/pkg/errors"
)

type NewUser struct {
	Username string      `validate:"required"`
	Name     string      `validate:"required"`
	Role     models.Role `validate:"oneof=admin donor staff"`
}

type NewProduct struct {
	Code   string `validate:"required"`
	NameAr string
	NameEn string
	Price  int `validate:"gte=0"`
}

type NewArticle struct {
	TitleAr string
	TitleEn string
	DescAr  string
	DescEn  string
}

type NewJob struct {
	TitleAr string
	TitleEn string
	Type    models.JobType `validate:"omitempty,oneof=Full-time Part-time Volunteer"`
}

// AddUser appends a user record.
func (s *Store) AddUser(in NewUser) (models.User, error) {
	if in.Role == "" {
		in.Role = models.RoleStaff
	}
	if err := s.check(in); err != nil {
		return models.User{}, err
	}

	u := models.User{ID: s.newID(), Username: in.Username, Name: in.Name, Role: in.Role}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)

	return u, nil
}

// DeleteUser removes the user with id. The admin account is refused.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "user %s", id)
	}
	if s.users[i].Username == ProtectedUsername {
		return ErrProtectedUser
	}
	s.users = slices.Delete(s.users, i, i+1)

	return nil
}

// AddProduct appends a product with the default unit and category.
func (s *Store) AddProduct(in NewProduct) (models.Product, error) {
	if err := s.check(in); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:          s.newID(),
		Code:        in.Code,
		NameAr:      in.NameAr,
		NameEn:      in.NameEn,
		Price:       in.Price,
		Unit:        "Unit",
		LastUpdated: s.today(),
		Category:    "General",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)

	return p, nil
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.products)
	s.products = slices.DeleteFunc(s.products, func(p models.Product) bool { return p.ID == id })
	if len(s.products) == n {
		return errors.Wrapf(ErrNotFound, "product %s", id)
	}
	return nil
}

// AddNews publishes an article at the top of the list.
func (s *Store) AddNews(in NewArticle) models.NewsItem {
	item := models.NewsItem{
		ID:       s.newID(),
		Date:     s.today(),
		Image:    content.DefaultNewsImage,
		TitleKey: "dynamic",
		TitleAr:  in.TitleAr,
		TitleEn:  in.TitleEn,
		DescKey:  "dynamic",
		DescAr:   in.DescAr,
		DescEn:   in.DescEn,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.news = slices.Insert(s.news, 0, item)

	return item
}

func (s *Store) DeleteNews(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.news)
	s.news = slices.DeleteFunc(s.news, func(item models.NewsItem) bool { return item.ID == id })
	if len(s.news) == n {
		return errors.Wrapf(ErrNotFound, "news %s", id)
	}
	return nil
}

// AddJob appends a vacancy filled with placeholder location and descriptions.
func (s *Store) AddJob(in NewJob) (models.JobOpportunity, error) {
	if in.Type == "" {
		in.Type = models.JobFullTime
	}
	if err := s.check(in); err != nil {
		return models.JobOpportunity{}, err
	}

	job := models.JobOpportunity{
		ID:            s.newID(),
		TitleAr:       in.TitleAr,
		TitleEn:       in.TitleEn,
		Type:          in.Type,
		Location:      "Taiz",
		DescriptionAr: "وصف الوظيفة...",
		DescriptionEn: "Job Description...",
		Deadline:      "Open",
		PostedDate:    s.today(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)

	return job, nil
}

func (s *Store) DeleteJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.jobs)
	s.jobs = slices.DeleteFunc(s.jobs, func(j models.JobOpportunity) bool { return j.ID == id })
	if len(s.jobs) == n {
		return errors.Wrapf(ErrNotFound, "job %s", id)
	}
	return nil
}

// AddReport puts r in front of the report list, assigning an id when it has none.
func (s *Store) AddReport(r models.ViolationReport) models.ViolationReport {
	if r.ID == "" {
		r.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = slices.Insert(s.reports, 0, r)

	return r
}

// NewID hands out an identifier from the store's generator.
func (s *Store) NewID() string {
	return s.newID()
}

// Today is the store's current date in YYYY-MM-DD form.
func (s *Store) Today() string {
	return s.today()
}

func (s *Store) UpdateProfile(p models.OrganizationProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}
