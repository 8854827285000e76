package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of
// repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// ActiveProfile returns the active contact profile.
func (r *ContactPostgres) ActiveProfile(ctx context.Context) (*model.ContactProfile, error) {
	const q = `
		SELECT id, title, about, is_active, created_at, updated_at
		FROM contact_profiles
		WHERE is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1
	`
	var p model.ContactProfile
	if err := r.db.QueryRowContext(ctx, q).Scan(&p.ID, &p.Title, &p.About, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListItems returns the active items of a profile in listing order.
func (r *ContactPostgres) ListItems(ctx context.Context, profileID string) ([]model.ContactItem, error) {
	q := `SELECT id, profile_id, kind, label, value, link, ord, is_active FROM contact_items WHERE profile_id = $1 AND is_active = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityContactItem)
	rows, err := r.db.QueryContext(ctx, q, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactItem, 0)
	for rows.Next() {
		var (
			it   model.ContactItem
			kind string
		)
		if err := rows.Scan(&it.ID, &it.ProfileID, &kind, &it.Label, &it.Value, &it.Link, &it.Order, &it.IsActive); err != nil {
			return nil, err
		}
		it.Kind = model.ContactKind(kind)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateRequest inserts an inbound contact request.
func (r *ContactPostgres) CreateRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error) {
	const q = `
		INSERT INTO contact_requests (id, full_name, email, phone, message, is_processed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, full_name, email, phone, message, is_processed, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		req.ID,
		req.FullName,
		req.Email,
		req.Phone,
		req.Message,
		req.IsProcessed,
		req.CreatedAt,
	)
	var out model.ContactRequest
	if err := row.Scan(&out.ID, &out.FullName, &out.Email, &out.Phone, &out.Message, &out.IsProcessed, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRequests returns contact requests using LIMIT/OFFSET pagination
// and a total count.
func (r *ContactPostgres) ListRequests(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactRequest], error) {
	const qCount = `SELECT COUNT(*) FROM contact_requests`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT id, full_name, email, phone, message, is_processed, created_at FROM contact_requests ORDER BY ` +
		repository.OrderBy(repository.EntityContactRequest) + ` LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactRequest, 0)
	for rows.Next() {
		var req model.ContactRequest
		if err := rows.Scan(&req.ID, &req.FullName, &req.Email, &req.Phone, &req.Message, &req.IsProcessed, &req.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ContactRequest]{Items: items, Total: total}, nil
}

// MarkProcessed flags the given requests as processed.
func (r *ContactPostgres) MarkProcessed(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := `UPDATE contact_requests SET is_processed = TRUE WHERE id IN (` + strings.Join(placeholders, ", ") + `)`
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
