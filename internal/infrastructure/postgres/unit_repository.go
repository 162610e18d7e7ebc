package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = `id, product_id, product_name, serial_code, status, current_location,
	booking, sold_at, po_number, history_log, created_at`

// UnitRepo UnitRepository over PostgreSQL. Booking and history are
// jsonb columns; status is a plain text column so the conditional
// update below can guard on it.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository builds the persistence adapter. Pass a pool or a tx
// (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persists a new unit.
func (r *UnitRepo) Create(unit *entity.InventoryUnit) error {
	booking, history, err := marshalUnitJSON(unit)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO inventory_units (id, product_id, product_name, serial_code, status, current_location,
			booking, sold_at, po_number, history_log, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		unit.ID, unit.ProductID, unit.ProductName, unit.SerialCode, unit.Status, unit.CurrentLocation,
		booking, unit.SoldAt, unit.PONumber, history, unit.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID fetches a unit by ID.
func (r *UnitRepo) GetByID(id string) (*entity.InventoryUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM inventory_units WHERE id = $1`
	u, err := scanUnit(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// ListByProduct returns a product's units in serial order.
func (r *UnitRepo) ListByProduct(productID string) ([]*entity.InventoryUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM inventory_units WHERE product_id = $1 ORDER BY serial_code`
	return r.list(query, productID)
}

// ListByStatus returns every unit in the given status, oldest first.
func (r *UnitRepo) ListByStatus(status entity.UnitStatus) ([]*entity.InventoryUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM inventory_units WHERE status = $1 ORDER BY created_at`
	return r.list(query, status)
}

// Update rewrites a unit unconditionally. Lifecycle transitions must go
// through UpdateStatus instead.
func (r *UnitRepo) Update(unit *entity.InventoryUnit) error {
	booking, history, err := marshalUnitJSON(unit)
	if err != nil {
		return err
	}
	query := `
		UPDATE inventory_units SET product_name = $2, status = $3, current_location = $4,
			booking = $5, sold_at = $6, po_number = $7, history_log = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.ProductName, unit.Status, unit.CurrentLocation,
		booking, unit.SoldAt, unit.PONumber, history,
	)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus writes a lifecycle transition guarded by the status it
// was computed from. A miss means another writer got there first and
// surfaces as ErrConflict; the row is left exactly as that writer set
// it.
func (r *UnitRepo) UpdateStatus(id string, expected entity.UnitStatus, unit *entity.InventoryUnit) error {
	booking, history, err := marshalUnitJSON(unit)
	if err != nil {
		return err
	}
	query := `
		UPDATE inventory_units SET status = $3, current_location = $4,
			booking = $5, sold_at = $6, po_number = $7, history_log = $8
		WHERE id = $1 AND status = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		id, expected, unit.Status, unit.CurrentLocation,
		booking, unit.SoldAt, unit.PONumber, history,
	)
	if err != nil {
		return fmt.Errorf("update unit status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// DeleteByProduct removes every unit of a product (cascade deletion).
func (r *UnitRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_units WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete units: %w", err)
	}
	return nil
}

func (r *UnitRepo) list(query string, args ...any) ([]*entity.InventoryUnit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryUnit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func marshalUnitJSON(unit *entity.InventoryUnit) (booking, history []byte, err error) {
	if unit.Booking != nil {
		booking, err = json.Marshal(unit.Booking)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal booking: %w", err)
		}
	}
	history, err = json.Marshal(unit.HistoryLog)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal history: %w", err)
	}
	return booking, history, nil
}

func scanUnit(row pgx.Row) (*entity.InventoryUnit, error) {
	var u entity.InventoryUnit
	var booking, history []byte
	err := row.Scan(
		&u.ID, &u.ProductID, &u.ProductName, &u.SerialCode, &u.Status, &u.CurrentLocation,
		&booking, &u.SoldAt, &u.PONumber, &history, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(booking) > 0 {
		u.Booking = &entity.Booking{}
		if err := json.Unmarshal(booking, u.Booking); err != nil {
			return nil, fmt.Errorf("unmarshal booking: %w", err)
		}
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &u.HistoryLog); err != nil {
			return nil, fmt.Errorf("unmarshal history: %w", err)
		}
	}
	return &u, nil
}
