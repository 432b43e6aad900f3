package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/pkg/dbmetrics"
	"github.com/dsmirn0v/AQS-BookingService/pkg/psqlbuilder"
	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

const slotColumns = "id, slot_date, start_time, end_time, max_bookings, booked_count, " +
	"service_types, is_available, created_by, notes, created_at, updated_at"

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот с booked_count = 0
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
			"max_bookings",
			"service_types",
			"is_available",
			"created_by",
			"notes",
		).
		Values(
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.MaxBookings,
			pq.Array(slot.ServiceTypes),
			slot.IsAvailable,
			slot.CreatedBy,
			slot.Notes,
		).
		Suffix("RETURNING id, booked_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.BookedCount,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSlotRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// List получает слоты по фильтру
// Сортировка всегда по дате и времени начала по возрастанию
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns).
		From("slots").
		OrderBy("slot_date ASC", "start_time ASC")

	// Фильтрация по периоду (границы включительно)
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}

	// Фильтрация по типу услуги: пустой список = слот для всех типов
	if filter.ServiceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Expr("cardinality(service_types) = 0"),
			squirrel.Expr("? = ANY(service_types)", string(*filter.ServiceType)),
		})
	}

	// Только доступные и незаполненные слоты
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"is_available": true}).
			Where(squirrel.Expr("booked_count < max_bookings"))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListByDate получает все доступные слоты на конкретную дату,
// отсортированные по времени начала по возрастанию
// Используется внутри транзакции бронирования для поиска подходящего слота
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns).
		From("slots").
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Eq{"is_available": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// HasOverlapping проверяет, пересекается ли [start, end) с каким-либо слотом
// на указанную дату. Полуоткрытые интервалы: соприкасающиеся границы
// пересечением не считаются. Строки HH:MM сравниваются лексикографически,
// что для формата с ведущими нулями эквивалентно сравнению по времени
func (r *Repository) HasOverlapping(ctx context.Context, date time.Time, start, end types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("slots").
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ReserveCapacity атомарно занимает одно место в слоте условным обновлением:
//
//	UPDATE slots SET booked_count = booked_count + 1
//	WHERE id = $1 AND booked_count < max_bookings
//
// Предикат в WHERE гарантирует, что два конкурентных вызова не смогут
// переполнить ёмкость независимо от уровня изоляции. Ноль затронутых строк
// означает, что слот заполнился между чтением и записью - это терминальный
// ErrSlotFull, без повторных попыток
func (r *Repository) ReserveCapacity(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("booked_count", squirrel.Expr("booked_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("booked_count < max_bookings")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotFull
	}

	return nil
}

// DeleteIfEmpty удаляет слот, только если на него нет бронирований:
//
//	DELETE FROM slots WHERE id = $1 AND booked_count = 0
//
// Условное удаление закрывает гонку с конкурентным бронированием:
// проверка booked_count = 0 и удаление выполняются одним оператором
func (r *Repository) DeleteIfEmpty(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"booked_count": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteIfEmpty - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteIfEmpty - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteIfEmpty - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotHasBookings
	}

	return nil
}

// scanSlotRow сканирует одну строку слота
func (r *Repository) scanSlotRow(row *sql.Row) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.MaxBookings,
		&s.BookedCount,
		pq.Array(&s.ServiceTypes),
		&s.IsAvailable,
		&s.CreatedBy,
		&s.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.MaxBookings,
			&s.BookedCount,
			pq.Array(&s.ServiceTypes),
			&s.IsAvailable,
			&s.CreatedBy,
			&s.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
