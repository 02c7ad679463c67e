package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements sitecontent.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) sitecontent.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) sitecontent.Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("duplicate entry in %s", operation)
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Section operations

const sectionColumns = `section_type, title, content, status, created_at, updated_at`

func scanSection(row pgx.Row) (*sitecontent.ContentSection, error) {
	var section sitecontent.ContentSection
	err := row.Scan(
		&section.Type, &section.Title, &section.Content,
		&section.Status, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *Repository) GetSection(ctx context.Context, t sitecontent.SectionType) (*sitecontent.ContentSection, error) {
	query := `
        SELECT ` + sectionColumns + `
        FROM content_sections WHERE section_type = $1`

	section, err := scanSection(r.db.QueryRow(ctx, query, string(t)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrSectionNotFound
		}
		return nil, r.handlePostgresError("get section", err)
	}

	return section, nil
}

func (r *Repository) GetPublishedSection(ctx context.Context, t sitecontent.SectionType) (*sitecontent.ContentSection, error) {
	query := `
        SELECT ` + sectionColumns + `
        FROM content_sections WHERE section_type = $1 AND status = $2`

	section, err := scanSection(r.db.QueryRow(ctx, query, string(t), string(sitecontent.SectionStatusPublished)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrSectionNotFound
		}
		return nil, r.handlePostgresError("get published section", err)
	}

	return section, nil
}

func (r *Repository) ListSections(ctx context.Context, status *sitecontent.SectionStatus) ([]*sitecontent.ContentSection, error) {
	query := `
        SELECT ` + sectionColumns + `
        FROM content_sections`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.handlePostgresError("list sections", err)
	}
	defer rows.Close()

	var sections []*sitecontent.ContentSection
	for rows.Next() {
		var section sitecontent.ContentSection
		if err := rows.Scan(
			&section.Type, &section.Title, &section.Content,
			&section.Status, &section.CreatedAt, &section.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	return sections, rows.Err()
}

func (r *Repository) UpsertSection(ctx context.Context, params sitecontent.UpsertSectionParams) (*sitecontent.ContentSection, error) {
	// COALESCE keeps stored values for fields the caller omitted, so
	// two concurrent partial upserts interleave per field group rather
	// than clobbering whole rows.
	query := `
        INSERT INTO content_sections (section_type, title, content, status, created_at, updated_at)
        VALUES ($1, COALESCE($2, ''), COALESCE($3, '{}'::jsonb), COALESCE($4, 'draft'), $5, $5)
        ON CONFLICT (section_type) DO UPDATE SET
            title      = COALESCE($2, content_sections.title),
            content    = COALESCE($3, content_sections.content),
            status     = COALESCE($4, content_sections.status),
            updated_at = $5
        RETURNING ` + sectionColumns

	var statusArg *string
	if params.Status != nil {
		s := string(*params.Status)
		statusArg = &s
	}

	section, err := scanSection(r.db.QueryRow(ctx, query,
		string(params.Type), params.Title, params.Content, statusArg, params.UpdatedAt))
	if err != nil {
		return nil, r.handlePostgresError("upsert section", err)
	}

	return section, nil
}

func (r *Repository) SetSectionStatus(ctx context.Context, t sitecontent.SectionType, status sitecontent.SectionStatus, updatedAt time.Time) (*sitecontent.ContentSection, error) {
	query := `
        UPDATE content_sections SET status = $2, updated_at = $3
        WHERE section_type = $1
        RETURNING ` + sectionColumns

	section, err := scanSection(r.db.QueryRow(ctx, query, string(t), string(status), updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrSectionNotFound
		}
		return nil, r.handlePostgresError("set section status", err)
	}

	return section, nil
}

// Media operations

const mediaColumns = `id, object_key, url, file_name, mime_type, alt_text, size_bytes, uploaded_by, created_at, updated_at`

func scanMediaAsset(row pgx.Row) (*sitecontent.MediaAsset, error) {
	var asset sitecontent.MediaAsset
	err := row.Scan(
		&asset.ID, &asset.ObjectKey, &asset.URL, &asset.FileName,
		&asset.MimeType, &asset.AltText, &asset.Size, &asset.UploadedBy,
		&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *Repository) CreateMediaAsset(ctx context.Context, asset *sitecontent.MediaAsset) error {
	query := `
        INSERT INTO media_assets (` + mediaColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		asset.ID, asset.ObjectKey, asset.URL, asset.FileName,
		asset.MimeType, asset.AltText, asset.Size, asset.UploadedBy,
		asset.CreatedAt, asset.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create media asset", err)
	}

	return nil
}

func (r *Repository) GetMediaAsset(ctx context.Context, id uuid.UUID) (*sitecontent.MediaAsset, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_assets WHERE id = $1`

	asset, err := scanMediaAsset(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrMediaNotFound
		}
		return nil, r.handlePostgresError("get media asset", err)
	}

	return asset, nil
}

func (r *Repository) ListMediaAssets(ctx context.Context, params sitecontent.ListMediaParams) ([]*sitecontent.MediaAsset, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	n := 0
	if params.Search != "" {
		n++
		where += fmt.Sprintf(` AND (file_name ILIKE $%d OR alt_text ILIKE $%d)`, n, n)
		args = append(args, "%"+params.Search+"%")
	}
	if params.MimeType != "" {
		n++
		where += fmt.Sprintf(` AND mime_type = $%d`, n)
		args = append(args, params.MimeType)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM media_assets`+where, args...).Scan(&total); err != nil {
		return nil, 0, r.handlePostgresError("count media assets", err)
	}

	query := `SELECT ` + mediaColumns + ` FROM media_assets` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.handlePostgresError("list media assets", err)
	}
	defer rows.Close()

	var assets []*sitecontent.MediaAsset
	for rows.Next() {
		var asset sitecontent.MediaAsset
		if err := rows.Scan(
			&asset.ID, &asset.ObjectKey, &asset.URL, &asset.FileName,
			&asset.MimeType, &asset.AltText, &asset.Size, &asset.UploadedBy,
			&asset.CreatedAt, &asset.UpdatedAt); err != nil {
			return nil, 0, err
		}
		assets = append(assets, &asset)
	}

	return assets, total, rows.Err()
}

func (r *Repository) UpdateMediaAltText(ctx context.Context, id uuid.UUID, altText string, updatedAt time.Time) (*sitecontent.MediaAsset, error) {
	query := `
        UPDATE media_assets SET alt_text = $2, updated_at = $3
        WHERE id = $1
        RETURNING ` + mediaColumns

	asset, err := scanMediaAsset(r.db.QueryRow(ctx, query, id, altText, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrMediaNotFound
		}
		return nil, r.handlePostgresError("update media asset", err)
	}

	return asset, nil
}

func (r *Repository) DeleteMediaAsset(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media_assets WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete media asset", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrMediaNotFound
	}
	return nil
}
