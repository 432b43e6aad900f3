package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	slotRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/slot"
	"github.com/dsmirn0v/AQS-BookingService/internal/integrations/notifyservice"
)

// fakeSlotStore потокобезопасное in-memory хранилище слотов,
// воспроизводящее семантику условного инкремента: резервирование
// атомарно под мьютексом и отказывает при исчерпанной ёмкости
type fakeSlotStore struct {
	mu    sync.Mutex
	slots map[int64]*domain.Slot
}

// txJournalKey ключ контекста с журналом резервирований текущей
// "транзакции": откат затрагивает только свои инкременты
type txJournalKey struct{}

func newFakeSlotStore(slots ...*domain.Slot) *fakeSlotStore {
	m := make(map[int64]*domain.Slot, len(slots))
	for _, s := range slots {
		m[s.ID] = s
	}
	return &fakeSlotStore{slots: m}
}

func (f *fakeSlotStore) ListByDate(_ context.Context, date time.Time) ([]*domain.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*domain.Slot
	for _, s := range f.slots {
		if s.Date.Equal(date) && s.IsAvailable {
			copied := *s
			result = append(result, &copied)
		}
	}
	// Сортировка вставками по времени начала: слотов в тестах мало
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].StartTime.IsBefore(result[j-1].StartTime); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (f *fakeSlotStore) ReserveCapacity(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.BookedCount >= s.MaxBookings {
		return slotRepo.ErrSlotFull
	}
	s.BookedCount++
	if journal, ok := ctx.Value(txJournalKey{}).(*[]int64); ok {
		*journal = append(*journal, id)
	}
	return nil
}

func (f *fakeSlotStore) rollback(journal []int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range journal {
		f.slots[id].BookedCount--
	}
}

func (f *fakeSlotStore) bookedCount(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots[id].BookedCount
}

// fakeApptStore in-memory хранилище бронирований
type fakeApptStore struct {
	mu      sync.Mutex
	nextID  int64
	created []*domain.Appointment
	failing bool
}

func (f *fakeApptStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errors.New("insert failed")
	}
	f.nextID++
	copied := *appt
	copied.ID = f.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeApptStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

// fakeTxManager выполняет fn и имитирует откат инкрементов при ошибке
type fakeTxManager struct {
	slots *fakeSlotStore
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	journal := &[]int64{}
	ctx = context.WithValue(ctx, txJournalKey{}, journal)
	if err := fn(ctx); err != nil {
		f.slots.rollback(*journal)
		return err
	}
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []*notifyservice.AppointmentConfirmation
	fails bool
}

func (f *fakeNotifier) SendAppointmentConfirmationWithGracefulDegradation(_ context.Context, c *notifyservice.AppointmentConfirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails {
		return notifyservice.ErrServiceDegraded
	}
	f.sent = append(f.sent, c)
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)

func testDate(daysFromNow int) time.Time {
	d := testNow.AddDate(0, 0, daysFromNow)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}

func newTestUseCase(slots *fakeSlotStore, appts *fakeApptStore, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(slots, appts, notifier, &fakeTxManager{slots: slots}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceType: "maintenance",
		Date:        testDate(1).Format(domain.DateFormat),
		TimeSlot:    "09:30",
		FirstName:   "Anna",
		LastName:    "Petrova",
		Email:       "anna@example.com",
		Phone:       "+79990001122",
		Address:     "5 Pool Lane",
	}
}

func TestExecute_BooksEarliestMatchingSlot(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 2, Date: testDate(1), StartTime: "10:00", EndTime: "11:00", MaxBookings: 5, IsAvailable: true},
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	appts := &fakeApptStore{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(slots, appts, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 09:30 попадает в [09:00, 10:00), но не в [10:00, 11:00)
	assert.Equal(t, 1, slots.bookedCount(1))
	assert.Equal(t, 0, slots.bookedCount(2))
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "maintenance", resp.ServiceType)

	// Подтверждение отправлено после успешного бронирования
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, resp.ID, notifier.sent[0].AppointmentID)
}

func TestExecute_BoundaryTimes(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	uc := newTestUseCase(slots, &fakeApptStore{}, &fakeNotifier{})

	// Начало интервала включено
	req := validRequest()
	req.TimeSlot = "09:00"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Конец интервала исключён
	req = validRequest()
	req.TimeSlot = "10:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_ValidationOrder(t *testing.T) {
	uc := newTestUseCase(newFakeSlotStore(), &fakeApptStore{}, &fakeNotifier{})

	// Отсутствие обязательного поля бьёт неизвестный тип услуги
	req := validRequest()
	req.Email = ""
	req.ServiceType = "grooming"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)

	// Неизвестный тип услуги бьёт некорректную дату
	req = validRequest()
	req.ServiceType = "grooming"
	req.Date = "not-a-date"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownServiceType)

	// Некорректная дата бьёт некорректное время
	req = validRequest()
	req.Date = "not-a-date"
	req.TimeSlot = "9am"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Некорректное время проверяется последним
	req = validRequest()
	req.TimeSlot = "9am"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceTypeNormalization(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	uc := newTestUseCase(slots, &fakeApptStore{}, &fakeNotifier{})

	req := validRequest()
	req.ServiceType = "  Maintenance  "
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.ServiceType)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(newFakeSlotStore(), &fakeApptStore{}, &fakeNotifier{})

	req := validRequest()
	req.Date = testDate(-1).Format(domain.DateFormat)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)

	// Сегодняшняя дата допустима независимо от времени суток
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(0), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	uc = newTestUseCase(slots, &fakeApptStore{}, &fakeNotifier{})
	req = validRequest()
	req.Date = testDate(0).Format(domain.DateFormat)
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_SlotServiceTypeFiltering(t *testing.T) {
	slots := newFakeSlotStore(
		// Ранний слот принимает только installation
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "12:00", MaxBookings: 5, IsAvailable: true, ServiceTypes: []string{"installation"}},
		// Поздний слот открыт для всех типов
		&domain.Slot{ID: 2, Date: testDate(1), StartTime: "09:30", EndTime: "12:00", MaxBookings: 5, IsAvailable: true},
	)
	uc := newTestUseCase(slots, &fakeApptStore{}, &fakeNotifier{})

	req := validRequest()
	req.TimeSlot = "10:00"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// maintenance не проходит в слот 1, выбран слот 2 с пустым списком типов
	assert.Equal(t, 0, slots.bookedCount(1))
	assert.Equal(t, 1, slots.bookedCount(2))
}

func TestExecute_NoMatchingSlot(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "14:00", EndTime: "15:00", MaxBookings: 5, IsAvailable: true},
	)
	uc := newTestUseCase(slots, &fakeApptStore{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_GuestBooking(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	appts := &fakeApptStore{}
	uc := newTestUseCase(slots, appts, &fakeNotifier{})

	req := validRequest()
	req.UserID = nil
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.UserID)
	assert.True(t, appts.created[0].IsGuest())
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	uc := newTestUseCase(slots, &fakeApptStore{}, &fakeNotifier{fails: true})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 1, slots.bookedCount(1))
}

func TestExecute_InsertFailureRollsBackReservation(t *testing.T) {
	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, IsAvailable: true},
	)
	appts := &fakeApptStore{failing: true}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(slots, appts, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	// Инкремент откатился вместе с транзакцией, уведомление не ушло
	assert.Equal(t, 0, slots.bookedCount(1))
	assert.Empty(t, notifier.sent)
}

// Ёмкость никогда не превышается: при N конкурентных запросов на слот
// с ёмкостью K ровно K завершаются успехом, остальные получают ErrSlotFull
func TestExecute_ConcurrentBookingsNeverExceedCapacity(t *testing.T) {
	const (
		capacity   = 3
		requesters = 25
	)

	slots := newFakeSlotStore(
		&domain.Slot{ID: 1, Date: testDate(1), StartTime: "09:00", EndTime: "10:00", MaxBookings: capacity, IsAvailable: true},
	)
	appts := &fakeApptStore{}
	uc := newTestUseCase(slots, appts, &fakeNotifier{})

	var wg sync.WaitGroup
	errs := make([]error, requesters)
	for i := 0; i < requesters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, full int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, requesters-capacity, full)
	assert.Equal(t, capacity, slots.bookedCount(1))
	assert.Equal(t, capacity, appts.count())
}
