package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return NewRepository(db), mock, func() { db.Close() }
}

func TestReserveCapacity_Success(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec(`UPDATE slots SET booked_count = booked_count \+ 1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ReserveCapacity(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReserveCapacity_ZeroRowsMeansSlotFull(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	// Условие booked_count < max_bookings не выполнено: ёмкость выбрана
	mock.ExpectExec(`UPDATE slots SET booked_count = booked_count \+ 1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReserveCapacity(context.Background(), 1)
	if !errors.Is(err, ErrSlotFull) {
		t.Fatalf("expected ErrSlotFull, got %v", err)
	}
}

func TestReserveCapacity_QueryContainsGuard(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	// Предикат ёмкости обязан быть частью самого UPDATE
	mock.ExpectExec(`WHERE id = \$1 AND booked_count < max_bookings`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ReserveCapacity(context.Background(), 7); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("capacity guard missing from update statement: %v", err)
	}
}

func TestDeleteIfEmpty_Success(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec(`DELETE FROM slots WHERE id = \$1 AND booked_count = \$2`).
		WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteIfEmpty(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestDeleteIfEmpty_ZeroRowsMeansHasBookings(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec(`DELETE FROM slots`).
		WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteIfEmpty(context.Background(), 1)
	if !errors.Is(err, ErrSlotHasBookings) {
		t.Fatalf("expected ErrSlotHasBookings, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT .+ FROM slots WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestHasOverlapping(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)

	// Пересечение найдено
	mock.ExpectQuery(`SELECT 1 FROM slots WHERE slot_date = \$1 AND start_time < \$2 AND end_time > \$3`).
		WithArgs(date, "10:00", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	overlaps, err := repo.HasOverlapping(context.Background(), date, "09:00", "10:00")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !overlaps {
		t.Fatal("expected overlap to be detected")
	}

	// Пересечений нет
	mock.ExpectQuery(`SELECT 1 FROM slots`).
		WithArgs(date, "12:00", "11:00").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	overlaps, err = repo.HasOverlapping(context.Background(), date, "11:00", "12:00")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if overlaps {
		t.Fatal("expected no overlap")
	}
}
