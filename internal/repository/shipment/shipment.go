package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"celeris/internal/entities"
	"celeris/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, tracking_code, status, origin, destination, description,
		weight_kg, cost, driver_id, security_code, incident_note, rating,
		customer_name, customer_email, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (*ShipmentDB, error) {
	var shipmentModel ShipmentDB
	err := row.Scan(
		&shipmentModel.ID,
		&shipmentModel.TrackingCode,
		&shipmentModel.Status,
		&shipmentModel.Origin,
		&shipmentModel.Destination,
		&shipmentModel.Description,
		&shipmentModel.WeightKg,
		&shipmentModel.Cost,
		&shipmentModel.DriverID,
		&shipmentModel.SecurityCode,
		&shipmentModel.IncidentNote,
		&shipmentModel.Rating,
		&shipmentModel.CustomerName,
		&shipmentModel.CustomerEmail,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentModel, nil
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	query := `INSERT INTO shipments (tracking_code, status, origin, destination, description,
			weight_kg, cost, security_code, customer_name, customer_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING ` + shipmentColumns

	shipmentModel, err := scanShipment(r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.TrackingCode,
		shipmentModifyModel.Status,
		shipmentModifyModel.Origin,
		shipmentModifyModel.Destination,
		shipmentModifyModel.Description,
		shipmentModifyModel.WeightKg,
		shipmentModifyModel.Cost,
		shipmentModifyModel.SecurityCode,
		shipmentModifyModel.CustomerName,
		shipmentModifyModel.CustomerEmail,
		shipmentModifyModel.CreatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, repository.ErrTrackingCodeTaken
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) GetShipmentByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) GetShipmentByTrackingCode(ctx context.Context, code string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_code = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbycode error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		ORDER BY created_at DESC, id DESC`

	return r.queryList(ctx, query)
}

func (r *Repository) ListShipmentsByCustomerEmail(ctx context.Context, email string) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE customer_email = $1
		ORDER BY created_at DESC, id DESC`

	return r.queryList(ctx, query, email)
}

func (r *Repository) ListShipmentsByDriver(ctx context.Context, driverID int64, statuses []entities.ShipmentStatusType) ([]entities.Shipment, error) {
	builder := qb.
		Select(shipmentColumns).
		From("shipments").
		Where(sq.Eq{"driver_id": driverID}).
		OrderBy("created_at DESC", "id DESC")

	if len(statuses) > 0 {
		statusValues := make([]string, 0, len(statuses))
		for _, status := range statuses {
			statusValues = append(statusValues, status.String())
		}
		builder = builder.Where(sq.Eq{"status": statusValues})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listbydriver error: %w", err)
	}

	return r.queryList(ctx, query, args...)
}

// CommittedLoadByDriver считает производную нагрузку: сумму весов активных
// доставок водителя. Счетчик нигде не хранится и разойтись не может.
func (r *Repository) CommittedLoadByDriver(ctx context.Context, driverID int64) (float64, error) {
	query := `SELECT COALESCE(SUM(weight_kg), 0)
		FROM shipments
		WHERE driver_id = $1 AND status = 'en_route'`

	var load float64
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&load)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository committed load error: %w", err)
	}

	return load, nil
}

func (r *Repository) FleetLoads(ctx context.Context) ([]entities.DriverLoad, error) {
	query := `SELECT
			d.id,
			d.name,
			COALESCE(SUM(s.weight_kg), 0),
			d.capacity_kg,
			COUNT(s.id)
		FROM drivers d
		LEFT JOIN shipments s ON s.driver_id = d.id AND s.status = 'en_route'
		GROUP BY d.id
		ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository fleet loads error: %w", err)
	}
	defer rows.Close()

	loadModels := make([]DriverLoadDB, 0, 8)
	for rows.Next() {
		var loadModel DriverLoadDB
		err := rows.Scan(
			&loadModel.DriverID,
			&loadModel.DriverName,
			&loadModel.CommittedKg,
			&loadModel.CapacityKg,
			&loadModel.ActiveParcels,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository fleet loads error: %w", err)
		}
		loadModels = append(loadModels, loadModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository fleet loads error: %w", err)
	}

	loads := make([]entities.DriverLoad, 0, len(loadModels))
	for i := range loadModels {
		loads = append(loads, *ToDriverLoadDomain(&loadModels[i]))
	}
	return loads, nil
}

// MarkEnRoute — условный UPDATE: строка меняется только если она все еще
// received. Ноль строк означает, что статус ушел под ногами.
func (r *Repository) MarkEnRoute(ctx context.Context, shipmentID, driverID int64) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET status = 'en_route', driver_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'received'
		RETURNING ` + shipmentColumns

	return r.conditionalUpdate(ctx, "mark en route", query, shipmentID, driverID)
}

func (r *Repository) RevertToReceived(ctx context.Context, shipmentID int64) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET status = 'received', driver_id = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'en_route'
		RETURNING ` + shipmentColumns

	return r.conditionalUpdate(ctx, "revert to received", query, shipmentID)
}

func (r *Repository) MarkDelivered(ctx context.Context, shipmentID int64) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET status = 'delivered', updated_at = NOW()
		WHERE id = $1 AND status = 'en_route'
		RETURNING ` + shipmentColumns

	return r.conditionalUpdate(ctx, "mark delivered", query, shipmentID)
}

// MarkIncident оставляет driver_id на месте: история должна помнить, кто вез.
func (r *Repository) MarkIncident(ctx context.Context, shipmentID int64, note string) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET status = 'incident', incident_note = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'en_route'
		RETURNING ` + shipmentColumns

	return r.conditionalUpdate(ctx, "mark incident", query, shipmentID, note)
}

// SetRating с условием rating IS NULL: при гонке двух оценок победит ровно одна.
func (r *Repository) SetRating(ctx context.Context, shipmentID int64, stars int32) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET rating = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'delivered' AND rating IS NULL
		RETURNING ` + shipmentColumns

	return r.conditionalUpdate(ctx, "set rating", query, shipmentID, stars)
}

func (r *Repository) StatusCounts(ctx context.Context) (map[entities.ShipmentStatusType]int64, error) {
	query := `SELECT status, COUNT(*)
		FROM shipments
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository status counts error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.ShipmentStatusType]int64, 4)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository status counts error: %w", err)
		}
		counts[entities.ShipmentStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository status counts error: %w", err)
	}

	return counts, nil
}

func (r *Repository) conditionalUpdate(ctx context.Context, op, query string, args ...interface{}) (*entities.Shipment, error) {
	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoRowsUpdated
		}
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Shipment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		shipmentModel, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		shipmentModels = append(shipmentModels, *shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}
