package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/features/school/weekly_schedules/model"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db
}

// newMockDB — gorm di atas sqlmock TANPA DryRun, untuk menguji alur handler
// beneran: query yang tidak di-expect akan menggagalkan test.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

// Upsert minggu menabrak natural key (teacher, classroom, week) dan
// meng-overwrite grid + reaktivasi — inilah yang bikin POST idempoten.
func TestWeekUpsertConflictSQL(t *testing.T) {
	db := newDryRunDB(t)

	row := model.WeeklyScheduleModel{
		WeeklySchedulesSchoolID:      uuid.New(),
		WeeklySchedulesTeacherID:     uuid.New(),
		WeeklySchedulesClassroomID:   uuid.New(),
		WeeklySchedulesWeekStartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		WeeklySchedulesWeeklyData:    datatypes.NewJSONType(model.EmptyWeekGrid()),
		WeeklySchedulesIsActive:      true,
	}
	tx := db.Clauses(weekUpsertConflict()).Clauses(clause.Returning{}).Create(&row)
	if tx.Error != nil {
		t.Fatalf("create: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	conflict := `ON CONFLICT ("weekly_schedules_teacher_id","weekly_schedules_classroom_id","weekly_schedules_week_start_date")`
	if !strings.Contains(sql, conflict) {
		t.Fatalf("conflict target tidak sesuai natural key:\n%s", sql)
	}
	if !strings.Contains(sql, "DO UPDATE SET") {
		t.Fatalf("tabrakan harus overwrite grid, bukan DO NOTHING:\n%s", sql)
	}
	for _, col := range []string{
		`"weekly_schedules_weekly_data"`,
		`"weekly_schedules_is_active"`,
		`"weekly_schedules_updated_at"`,
	} {
		if !strings.Contains(sql[strings.Index(sql, "DO UPDATE SET"):], col) {
			t.Fatalf("kolom %s tidak ikut di-update saat tabrakan:\n%s", col, sql)
		}
	}
	if !strings.Contains(sql, "RETURNING") {
		t.Fatalf("upsert harus RETURNING baris hasil:\n%s", sql)
	}
}

// copy_week dengan minggu sumber yang tidak ada → 404, dan minggu target
// TIDAK disentuh sama sekali (tidak boleh ada INSERT/UPDATE menyusul).
func TestWeekActionCopyMissingSourceLeavesTargetUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewWeeklyScheduleController(db)

	teacherID := uuid.MustParse("7b7c9a1e-2f64-4f0a-9a37-0d2f6f9640b1")
	schoolID := uuid.MustParse("f2b430e4-18b2-4b95-b913-8ac7f29a3bc8")

	// 1) ownership check kelas → lolos
	mock.ExpectQuery(`SELECT count\(\*\) FROM "class_rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// 2) baca minggu sumber → kosong
	mock.ExpectQuery(`SELECT \* FROM "weekly_schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"weekly_schedule_id"}))

	app := fiber.New()
	app.Patch("/weekly-schedules", func(c *fiber.Ctx) error {
		c.Locals("teacher_id", teacherID.String())
		c.Locals("school_id", schoolID.String())
		return ctrl.WeekAction(c)
	})

	body := `{"action":"copy_week","classroom_id":"a6f1c2d4-9b3e-4c5a-8d7f-112233445566","source_week_start_date":"2024-03-04","target_week_start_date":"2024-03-11"}`
	req := httptest.NewRequest(fiber.MethodPatch, "/weekly-schedules", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, mau 404", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "Jadwal minggu sumber tidak ditemukan") {
		t.Fatalf("pesan tidak sesuai: %s", raw)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ada query di luar dua SELECT yang diharapkan: %v", err)
	}
}
