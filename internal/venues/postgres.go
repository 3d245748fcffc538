package venues

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubone24/eiga-miyou/internal/model"
)

// Postgres backs the resolver with the venue_site_mapping table, so manual
// corrections outlive a process restart. Created by internal/migrate.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres { return &Postgres{db: db} }

func (r *Postgres) Resolve(ctx context.Context, provider, venueName string) (*model.VenueSiteMapping, error) {
	m, err := r.scanOne(ctx,
		`SELECT provider, venue_name, site_code, COALESCE(site_url, '')
		   FROM venue_site_mapping
		  WHERE provider = $1 AND venue_name = $2
		  ORDER BY id LIMIT 1`, provider, venueName)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	m, err = r.scanOne(ctx,
		`SELECT provider, venue_name, site_code, COALESCE(site_url, '')
		   FROM venue_site_mapping
		  WHERE provider = $1
		    AND (venue_name LIKE '%' || $2 || '%' OR $2 LIKE '%' || venue_name || '%')
		  ORDER BY id LIMIT 1`, provider, venueName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *Postgres) scanOne(ctx context.Context, query string, args ...any) (*model.VenueSiteMapping, error) {
	var m model.VenueSiteMapping
	err := r.db.QueryRow(ctx, query, args...).Scan(&m.Provider, &m.VenueName, &m.SiteCode, &m.SiteURL)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Postgres) Upsert(ctx context.Context, m model.VenueSiteMapping) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO venue_site_mapping (provider, venue_name, site_code, site_url)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 ON CONFLICT (provider, site_code) DO UPDATE SET
		   venue_name = EXCLUDED.venue_name,
		   site_url = EXCLUDED.site_url`,
		m.Provider, m.VenueName, m.SiteCode, m.SiteURL)
	return err
}

func (r *Postgres) List(ctx context.Context, provider string) ([]model.VenueSiteMapping, error) {
	rows, err := r.db.Query(ctx,
		`SELECT provider, venue_name, site_code, COALESCE(site_url, '')
		   FROM venue_site_mapping WHERE provider = $1 ORDER BY id`, provider)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.VenueSiteMapping, 0)
	for rows.Next() {
		var m model.VenueSiteMapping
		if err := rows.Scan(&m.Provider, &m.VenueName, &m.SiteCode, &m.SiteURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Postgres) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM venue_site_mapping`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, m := range seedMappings {
		_, err := r.db.Exec(ctx,
			`INSERT INTO venue_site_mapping (provider, venue_name, site_code, site_url)
			 VALUES ($1, $2, $3, NULLIF($4, ''))
			 ON CONFLICT (provider, site_code) DO NOTHING`,
			m.Provider, m.VenueName, m.SiteCode, m.SiteURL)
		if err != nil {
			return err
		}
	}
	return nil
}
