package services

import (
	"testing"

	"jatomogu/constants"
	apperrors "jatomogu/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gdb, mock
}

func TestResolvePriceFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPricingService(gdb)

	rows := sqlmock.NewRows([]string{"id", "accommodation_id", "season", "duration", "price_per_night"}).
		AddRow(1, 10, "HIGH", "4-7", 5000.0)
	mock.ExpectQuery(`SELECT (.+) FROM "seasonal_prices"`).
		WithArgs(uint(10), constants.SeasonHigh, constants.Duration4to7, 1).
		WillReturnRows(rows)

	price, err := svc.ResolvePrice(10, constants.SeasonHigh, constants.Duration4to7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 5000.0 {
		t.Fatalf("price = %v, want 5000", price)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolvePriceMissingRowIsNotFree(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewPricingService(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "seasonal_prices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.ResolvePrice(10, constants.SeasonLow, constants.Duration2to3)
	if err == nil {
		t.Fatalf("missing rate must fail the quote, never price it at zero")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeRateNotConfigured {
		t.Fatalf("expected RATE_NOT_CONFIGURED, got %v", err)
	}
}

func TestComputeTotalLowerBoundNights(t *testing.T) {
	// HIGH season, 4-7 nights, 5000 per night bills the bucket's lower bound
	total := ComputeTotal(5000, constants.Duration4to7.Nights())
	if total != 20000 {
		t.Fatalf("total = %v, want 20000", total)
	}

	if got := ComputeTotal(3000, constants.DurationOver10.Nights()); got != 30000 {
		t.Fatalf("10+ bucket: total = %v, want 30000", got)
	}
}
