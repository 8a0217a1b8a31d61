// Package db archives submitted violation reports in Postgres so they survive restarts.
package db

import (
	"context"

	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type Database struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, dbURL string) (*Database, error) {
	if dbURL == "" {
		return nil, errors.New("database url is not set")
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	db := &Database{Pool: pool}
	if err := db.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS violation_reports (
	id TEXT PRIMARY KEY,
	product_code TEXT NOT NULL,
	product_name TEXT NOT NULL,
	official_price INT NOT NULL DEFAULT 0,
	reported_price DOUBLE PRECISION NOT NULL,
	shop_name TEXT NOT NULL DEFAULT '',
	lat DOUBLE PRECISION,
	lng DOUBLE PRECISION,
	description TEXT NOT NULL,
	ai_analysis TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	report_date TEXT NOT NULL,
	evidence_image TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_violation_reports_product ON violation_reports(product_code);
CREATE INDEX IF NOT EXISTS idx_violation_reports_created ON violation_reports(created_at);
`

func (db *Database) initSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "init schema")
	}
	return nil
}

// SaveReport archives r. Re-saving the same id is a no-op.
func (db *Database) SaveReport(ctx context.Context, r models.ViolationReport) error {
	var lat, lng *float64
	if r.Location != nil {
		lat, lng = &r.Location.Lat, &r.Location.Lng
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO violation_reports
			(id, product_code, product_name, official_price, reported_price, shop_name,
			 lat, lng, description, ai_analysis, status, report_date, evidence_image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO NOTHING`,
		r.ID, r.ProductCode, r.ProductName, r.OfficialPrice, r.ReportedPrice, r.ShopName,
		lat, lng, r.Description, r.AIAnalysis, string(r.Status), r.Timestamp, r.EvidenceImage,
	)

	return errors.Wrapf(err, "save report %s", r.ID)
}

// ListReports returns the archive newest first.
func (db *Database) ListReports(ctx context.Context) ([]models.ViolationReport, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, product_code, product_name, official_price, reported_price, shop_name,
		        lat, lng, description, ai_analysis, status, report_date, evidence_image
		 FROM violation_reports
		 ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query reports")
	}

	reports, err := pgx.CollectRows(rows, scanReport)
	if err != nil {
		return nil, errors.Wrap(err, "scan reports")
	}

	return reports, nil
}

func scanReport(row pgx.CollectableRow) (models.ViolationReport, error) {
	var (
		r        models.ViolationReport
		lat, lng *float64
		status   string
	)

	err := row.Scan(&r.ID, &r.ProductCode, &r.ProductName, &r.OfficialPrice, &r.ReportedPrice,
		&r.ShopName, &lat, &lng, &r.Description, &r.AIAnalysis, &status, &r.Timestamp, &r.EvidenceImage)
	if err != nil {
		return models.ViolationReport{}, err
	}

	r.Status = models.ReportStatus(status)
	if lat != nil && lng != nil {
		r.Location = &models.GeoPoint{Lat: *lat, Lng: *lng}
	}

	return r, nil
}

func (db *Database) Close() {
	db.Pool.Close()
}
