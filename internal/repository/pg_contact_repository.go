package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VETechnologiesCo/VPCO/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
// IDs come from the contact_submissions BIGSERIAL sequence, which keeps them
// unique and increasing across processes.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Ping checks the underlying pool.
func (r *PgContactRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Save inserts a new contact_submissions row and populates c.ID and
// c.Timestamp from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, c *model.ContactSubmission) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Message,
	).Scan(&c.ID, &c.Timestamp)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	c.Timestamp = c.Timestamp.UTC()
	return nil
}

// List returns submissions ordered by id, oldest first.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	query := `SELECT id, name, email, message, created_at
	          FROM contact_submissions
	          ORDER BY id ASC`
	var args []any
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var out []*model.ContactSubmission
	for rows.Next() {
		var c model.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Timestamp); err != nil {
			return nil, err
		}
		c.Timestamp = c.Timestamp.UTC()
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Count returns the number of stored submissions.
func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact submissions: %w", err)
	}
	return n, nil
}
