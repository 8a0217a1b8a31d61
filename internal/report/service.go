// Package report turns a citizen's price complaint into a stored violation report
// with an AI assessment attached.
package report

import (
	"context"
	"log/slog"
	"mime/multipart"

	"github.com/RaidanPro1/CPA-YePortal/internal/ai"
	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"
	"github.com/RaidanPro1/CPA-YePortal/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// UnknownProduct names reports whose code matches no listed product.
const UnknownProduct = "Unknown"

var (
	ErrInvalidInput    = errors.New("invalid report")
	ErrInvalidEvidence = errors.New("invalid evidence photo")
)

// Catalog is the slice of the application store the service needs.
type Catalog interface {
	ProductByCode(code string) (models.Product, bool)
	AddReport(r models.ViolationReport) models.ViolationReport
	NewID() string
	Today() string
}

// Archive keeps a durable copy of submitted reports.
type Archive interface {
	SaveReport(ctx context.Context, r models.ViolationReport) error
}

type Input struct {
	ProductCode   string  `validate:"required"`
	ReportedPrice float64 `validate:"gt=0"`
	Description   string  `validate:"required"`
	ShopName      string
	Location      *models.GeoPoint
	Evidence      *multipart.FileHeader
}

type Service struct {
	catalog    Catalog
	analyzer   ai.Analyzer
	archive    Archive
	uploadsDir string
	validate   *validator.Validate
	logger     *slog.Logger
}

type Option func(*Service)

func WithArchive(a Archive) Option {
	return func(s *Service) { s.archive = a }
}

// WithUploadsDir sets where evidence photos are written.
func WithUploadsDir(dir string) Option {
	return func(s *Service) { s.uploadsDir = dir }
}

func NewService(catalog Catalog, analyzer ai.Analyzer, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		catalog:    catalog,
		analyzer:   analyzer,
		uploadsDir: "uploads",
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates in, asks the analyzer for an assessment and records a pending
// report at the top of the report list. The analyzer sees the product name in
// lang; the stored report keeps the Arabic name.
func (s *Service) Submit(ctx context.Context, lang i18n.Language, in Input) (models.ViolationReport, ai.Result, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.ViolationReport{}, ai.Result{}, errors.Wrap(ErrInvalidInput, err.Error())
	}

	id := s.catalog.NewID()

	var evidence string
	if in.Evidence != nil {
		url, err := storage.SaveEvidence(s.uploadsDir, id, in.Evidence)
		if err != nil {
			return models.ViolationReport{}, ai.Result{}, errors.Wrap(ErrInvalidEvidence, err.Error())
		}
		evidence = url
	}

	nameAr, displayName, official := UnknownProduct, UnknownProduct, 0
	if p, ok := s.catalog.ProductByCode(in.ProductCode); ok {
		nameAr = p.NameAr
		displayName = i18n.Pick(lang, p.NameAr, p.NameEn)
		official = p.Price
	}

	result := s.analyzer.AnalyzeViolation(ctx, ai.ViolationInput{
		ProductName:   displayName,
		ReportedPrice: in.ReportedPrice,
		OfficialPrice: official,
		Description:   in.Description,
	})

	r := s.catalog.AddReport(models.ViolationReport{
		ID:            id,
		ProductCode:   in.ProductCode,
		ProductName:   nameAr,
		OfficialPrice: official,
		ReportedPrice: in.ReportedPrice,
		ShopName:      in.ShopName,
		Location:      in.Location,
		Description:   in.Description,
		AIAnalysis:    result.Text,
		Status:        models.StatusPending,
		Timestamp:     s.catalog.Today(),
		EvidenceImage: evidence,
	})

	s.logger.InfoContext(ctx, "violation report submitted",
		slog.String("id", r.ID),
		slog.String("product", r.ProductCode),
		slog.Bool("ai_fallback", result.Fallback),
	)

	if s.archive != nil {
		if err := s.archive.SaveReport(ctx, r); err != nil {
			s.logger.ErrorContext(ctx, "archive report failed",
				slog.String("id", r.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return r, result, nil
}
