package services

import (
	"testing"

	apperrors "jatomogu/errors"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSettingListFallsBackToDB(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewSettingService(gdb, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, "bonus_package_per_night", "1500").
			AddRow(2, "support_email", "info@example.com"))

	settings, err := svc.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("got %d settings, want 2", len(settings))
	}
	if settings[0].Key != "bonus_package_per_night" || settings[0].Value != "1500" {
		t.Fatalf("unexpected first setting: %+v", settings[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingSetUpserts(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewSettingService(gdb, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "settings" (.+) ON CONFLICT (.+) DO UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	setting, err := svc.Set("bonus_package_per_night", "2000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setting.Key != "bonus_package_per_night" || setting.Value != "2000" {
		t.Fatalf("unexpected setting: %+v", setting)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingSetRejectsEmptyKey(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewSettingService(gdb, nil)

	_, err := svc.Set("", "anything")
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeRequiredField {
		t.Fatalf("expected REQUIRED_FIELD, got %v", err)
	}
}
