package repositories

import (
	"RadiologyCenter/models"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=t dbname=t"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run database: %v", err)
	}
	return db
}

func filterSQL(t *testing.T, filter AppointmentFilter) (string, int) {
	t.Helper()
	var appointments []models.Appointment
	stmt := filter.apply(newDryRunDB(t).Model(&models.Appointment{})).Find(&appointments).Statement
	return stmt.SQL.String(), len(stmt.Vars)
}

func uintPtr(v uint) *uint {
	return &v
}

func TestAppointmentFilterEmptyAddsNoConditions(t *testing.T) {
	sql, vars := filterSQL(t, AppointmentFilter{})
	if strings.Contains(sql, "WHERE") {
		t.Errorf("expected no WHERE clause, got %q", sql)
	}
	if vars != 0 {
		t.Errorf("expected no bind variables, got %d", vars)
	}
}

func TestAppointmentFilterSingleCondition(t *testing.T) {
	sql, vars := filterSQL(t, AppointmentFilter{PatientID: uintPtr(7)})
	if !strings.Contains(sql, "appointment.patient_id") {
		t.Errorf("expected patient condition, got %q", sql)
	}
	if vars != 1 {
		t.Errorf("expected 1 bind variable, got %d", vars)
	}
}

func TestAppointmentFilterTwoFiltersIntersect(t *testing.T) {
	sql, vars := filterSQL(t, AppointmentFilter{PatientID: uintPtr(7), Status: models.StatusConfirmed})
	if !strings.Contains(sql, "appointment.patient_id") || !strings.Contains(sql, "appointment.status") {
		t.Fatalf("expected both conditions, got %q", sql)
	}
	if !strings.Contains(sql, " AND ") {
		t.Errorf("expected conditions AND-combined, got %q", sql)
	}
	if vars != 2 {
		t.Errorf("expected 2 bind variables, got %d", vars)
	}
}

func TestAppointmentFilterJoinTableConditions(t *testing.T) {
	sql, vars := filterSQL(t, AppointmentFilter{ExaminationID: uintPtr(3), UnitID: uintPtr(2)})
	if strings.Count(sql, "EXISTS") != 2 {
		t.Errorf("expected two EXISTS subqueries, got %q", sql)
	}
	if !strings.Contains(sql, "ae.examination_id") || !strings.Contains(sql, "e.unit_id") {
		t.Errorf("expected join-table conditions, got %q", sql)
	}
	if !strings.Contains(sql, " AND ") {
		t.Errorf("expected conditions AND-combined, got %q", sql)
	}
	if vars != 2 {
		t.Errorf("expected 2 bind variables, got %d", vars)
	}
}

func TestAppointmentFilterAllConditionsCombined(t *testing.T) {
	filter := AppointmentFilter{
		UnitID:        uintPtr(1),
		PatientID:     uintPtr(2),
		Status:        models.StatusPending,
		ExaminationID: uintPtr(3),
	}
	sql, vars := filterSQL(t, filter)
	if vars != 4 {
		t.Errorf("expected 4 bind variables, got %d", vars)
	}
	if strings.Count(sql, " AND ") < 3 {
		t.Errorf("expected all four conditions AND-combined, got %q", sql)
	}
}
