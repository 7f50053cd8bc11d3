package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_booking_app/internal/models"
	"github.com/SscSPs/desk_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const deskColumns = `desk_id, code, name, desk_type, capacity, floor, section, pos_x, pos_y,
	is_active, is_unavailable, created_at, created_by, last_updated_at, last_updated_by, version`

type PgxDeskRepository struct {
	BaseRepository
}

func newPgxDeskRepository(base BaseRepository) portsrepo.DeskRepositoryFacade {
	return &PgxDeskRepository{BaseRepository: base}
}

var _ portsrepo.DeskRepositoryFacade = (*PgxDeskRepository)(nil)

func scanDesk(row pgx.Row) (models.Desk, error) {
	var m models.Desk
	err := row.Scan(
		&m.DeskID,
		&m.Code,
		&m.Name,
		&m.DeskType,
		&m.Capacity,
		&m.Floor,
		&m.Section,
		&m.PosX,
		&m.PosY,
		&m.IsActive,
		&m.IsUnavailable,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

func (r *PgxDeskRepository) SaveDesk(ctx context.Context, desk domain.Desk) error {
	m := mapping.ToModelDesk(desk)
	query := `
        INSERT INTO desks (desk_id, code, name, desk_type, capacity, floor, section, pos_x, pos_y,
                           is_active, is_unavailable, created_at, created_by, last_updated_at, last_updated_by, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DeskID, m.Code, m.Name, m.DeskType, m.Capacity, m.Floor, m.Section, m.PosX, m.PosY,
		m.IsActive, m.IsUnavailable, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return conflictFor(constraint)
		}
		return fmt.Errorf("failed to save desk: %w", err)
	}
	return nil
}

func (r *PgxDeskRepository) FindDeskByID(ctx context.Context, deskID string) (*domain.Desk, error) {
	query := `SELECT ` + deskColumns + ` FROM desks WHERE desk_id = $1;`
	m, err := scanDesk(r.Pool.QueryRow(ctx, query, deskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find desk %s: %w", deskID, err)
	}
	d := mapping.ToDomainDesk(m)
	return &d, nil
}

func (r *PgxDeskRepository) ListDesks(ctx context.Context, filter domain.DeskFilter) ([]domain.Desk, error) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !filter.IncludeInactive {
		conds = append(conds, "is_active")
	}
	if filter.Type != "" {
		add("desk_type = $%d", string(filter.Type))
	}
	if filter.Floor != "" {
		add("floor = $%d", filter.Floor)
	}
	if filter.Section != "" {
		add("section = $%d", filter.Section)
	}

	query := `SELECT ` + deskColumns + ` FROM desks`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY floor, section, code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query desks: %w", err)
	}
	defer rows.Close()

	desks := []models.Desk{}
	for rows.Next() {
		m, err := scanDesk(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan desk row: %w", err)
		}
		desks = append(desks, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating desk rows: %w", rows.Err())
	}
	return mapping.ToDomainDeskSlice(desks), nil
}

// UpdateDeskStatus locks the desk row so the live-booking guard cannot race a
// booking insert, which takes a share lock on the same row.
func (r *PgxDeskRepository) UpdateDeskStatus(ctx context.Context, update portsrepo.DeskStatusUpdate) (*domain.Desk, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	locked, err := scanDesk(tx.QueryRow(ctx, `SELECT `+deskColumns+` FROM desks WHERE desk_id = $1 FOR UPDATE;`, update.DeskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock desk %s: %w", update.DeskID, err)
	}
	isActive, isUnavailable, ok := update.Change.Apply(mapping.ToDomainDesk(locked))
	if !ok {
		return nil, apperrors.NewValidationFailedError("unknown desk status " + string(update.Change))
	}

	if update.GuardLiveFrom != nil {
		var live int
		err = tx.QueryRow(ctx, `
            SELECT count(*) FROM bookings
            WHERE desk_id = $1 AND booking_date >= $2 AND status IN `+liveStatuses+`;`,
			update.DeskID, *update.GuardLiveFrom,
		).Scan(&live)
		if err != nil {
			return nil, fmt.Errorf("failed to count live bookings: %w", err)
		}
		if live > 0 {
			return nil, apperrors.NewConflictError(fmt.Sprintf("desk has %d upcoming booking(s); cancel them first", live))
		}
	}

	m, err := scanDesk(tx.QueryRow(ctx, `
        UPDATE desks
        SET is_active = $1, is_unavailable = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
        WHERE desk_id = $5
        RETURNING `+deskColumns+`;`,
		isActive, isUnavailable, update.UpdatedAt, update.UpdatedBy, update.DeskID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update desk status: %w", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainDesk(m)
	return &d, nil
}
