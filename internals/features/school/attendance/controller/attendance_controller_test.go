package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/features/school/attendance/model"
)

// newDryRunDB membuka gorm di atas koneksi sqlmock dengan DryRun aktif:
// SQL dirakit penuh tanpa pernah menyentuh koneksi.
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

// Count() GORM diam-diam jatuh ke count(*) saat select distinct multi-kolom,
// jadi SQL sesi WAJIB memuat ekspresi COUNT(DISTINCT ...) eksplisit.
func TestSessionCountQueryUsesDistinct(t *testing.T) {
	db := newDryRunDB(t)
	teacherID := uuid.MustParse("7b7c9a1e-2f64-4f0a-9a37-0d2f6f9640b1")

	var n int64
	tx := sessionCountQuery(db.Model(&model.AttendanceRecordModel{}).
		Where("attendance_records_teacher_id = ?", teacherID)).
		Find(&n)
	if tx.Error != nil {
		t.Fatalf("find: %v", tx.Error)
	}

	sql := strings.ToLower(tx.Statement.SQL.String())
	want := "count(distinct (attendance_records_classroom_id, attendance_records_subject_name, attendance_records_date))"
	if !strings.Contains(sql, want) {
		t.Fatalf("total_sessions harus distinct per (kelas, mapel, tanggal), dapat: %s", sql)
	}
	if strings.Contains(sql, "count(*)") {
		t.Fatalf("total_sessions tidak boleh count(*): %s", sql)
	}
}

func TestSessionTodayCountQueryUsesDistinct(t *testing.T) {
	db := newDryRunDB(t)
	teacherID := uuid.MustParse("7b7c9a1e-2f64-4f0a-9a37-0d2f6f9640b1")
	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	var n int64
	tx := sessionTodayCountQuery(db.Model(&model.AttendanceRecordModel{}).
		Where("attendance_records_teacher_id = ?", teacherID).
		Where("attendance_records_date = ?", today)).
		Find(&n)
	if tx.Error != nil {
		t.Fatalf("find: %v", tx.Error)
	}

	sql := strings.ToLower(tx.Statement.SQL.String())
	want := "count(distinct (attendance_records_classroom_id, attendance_records_subject_name))"
	if !strings.Contains(sql, want) {
		t.Fatalf("sessions_today harus distinct per (kelas, mapel), dapat: %s", sql)
	}
	if !strings.Contains(sql, "attendance_records_date") {
		t.Fatalf("sessions_today harus terfilter tanggal: %s", sql)
	}
	if strings.Contains(sql, "count(*)") {
		t.Fatalf("sessions_today tidak boleh count(*): %s", sql)
	}
}

// Upsert absensi menabrak natural key 5 kolom dan meng-overwrite field mutable
// saja — bukan membuat baris duplikat.
func TestAttendanceUpsertConflictSQL(t *testing.T) {
	db := newDryRunDB(t)

	remarks := "izin"
	row := model.AttendanceRecordModel{
		AttendanceRecordsSchoolID:    uuid.New(),
		AttendanceRecordsStudentID:   uuid.New(),
		AttendanceRecordsTeacherID:   uuid.New(),
		AttendanceRecordsClassroomID: uuid.New(),
		AttendanceRecordsClassName:   "7A",
		AttendanceRecordsSubjectName: "Matematika",
		AttendanceRecordsDate:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		AttendanceRecordsStatus:      model.AttendancePresent,
		AttendanceRecordsRemarks:     &remarks,
	}
	tx := db.Clauses(attendanceUpsertConflict()).Create(&row)
	if tx.Error != nil {
		t.Fatalf("create: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	conflict := `ON CONFLICT ("attendance_records_student_id","attendance_records_teacher_id","attendance_records_class_name","attendance_records_date","attendance_records_subject_name")`
	if !strings.Contains(sql, conflict) {
		t.Fatalf("conflict target tidak sesuai natural key:\n%s", sql)
	}
	if !strings.Contains(sql, "DO UPDATE SET") {
		t.Fatalf("tabrakan harus overwrite, bukan DO NOTHING:\n%s", sql)
	}
	for _, col := range []string{
		`"attendance_records_status"`,
		`"attendance_records_time_slot"`,
		`"attendance_records_remarks"`,
		`"attendance_records_updated_at"`,
	} {
		if !strings.Contains(sql[strings.Index(sql, "DO UPDATE SET"):], col) {
			t.Fatalf("kolom %s tidak ikut di-update saat tabrakan:\n%s", col, sql)
		}
	}
}
