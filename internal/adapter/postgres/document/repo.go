// Package document implements the document registry using PostgreSQL.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiyyappann/EchoVision/internal/adapter/postgres"
	"github.com/aiyyappann/EchoVision/internal/domain"
)

const entity = "document"

var columns = []string{
	"id", "filename", "stored_path", "size_bytes", "page_count",
	"summary_model", "audio_file", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts doc. A zero ID is replaced with a new UUID and CreatedAt is
// filled from the database.
func (r *Repo) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}

	query, args, err := psql.Insert("documents").
		Columns("id", "filename", "stored_path", "size_bytes", "page_count", "summary_model", "audio_file").
		Values(doc.ID, doc.Filename, doc.StoredPath, doc.SizeBytes, doc.PageCount, doc.SummaryModel, doc.AudioFile).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert document: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&doc.CreatedAt); err != nil {
		return postgres.MapError(err, entity, doc.ID)
	}
	return nil
}

// GetByFilename returns the most recently uploaded document with that name.
func (r *Repo) GetByFilename(ctx context.Context, filename string) (*domain.Document, error) {
	query, args, err := psql.Select(columns...).
		From("documents").
		Where(sq.Eq{"filename": filename}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select document: %w", err)
	}

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, filename)
	}
	return doc, nil
}

// List returns a page of documents, newest first, and the total number of
// matching rows.
func (r *Repo) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	filter.Normalize()

	where := sq.And{}
	if s := strings.TrimSpace(filter.Search); s != "" {
		where = append(where, sq.ILike{"filename": "%" + escapeLike(s) + "%"})
	}

	countQuery, countArgs, err := psql.Select("count(*)").From("documents").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count documents: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}
	if total == 0 {
		return []domain.Document{}, 0, nil
	}

	query, args, err := psql.Select(columns...).
		From("documents").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list documents: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0, filter.Limit)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, total, nil
}

// UpdateAudio records the audio file generated for a document.
func (r *Repo) UpdateAudio(ctx context.Context, id uuid.UUID, audioFile string) error {
	query, args, err := psql.Update("documents").
		Set("audio_file", audioFile).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update document: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteOlderThan removes documents created before threshold and returns the
// removed rows so their files can be cleaned up.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) ([]domain.Document, error) {
	query, args, err := psql.Delete("documents").
		Where(sq.Lt{"created_at": threshold}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete documents: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("delete documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("delete documents: %w", err)
	}
	return docs, nil
}

// Ping checks connectivity for the readiness probe.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document
	err := row.Scan(
		&d.ID, &d.Filename, &d.StoredPath, &d.SizeBytes, &d.PageCount,
		&d.SummaryModel, &d.AudioFile, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
