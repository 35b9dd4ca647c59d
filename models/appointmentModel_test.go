package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "pending", "Done"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidTransferType(t *testing.T) {
	for _, s := range []string{TransferEmergency, TransferCash, TransferUrgent, TransferInsurance, TransferContract} {
		if !ValidTransferType(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidTransferType("Walkin") {
		t.Error("expected Walkin to be invalid")
	}
}

func TestValidAttachment(t *testing.T) {
	for _, s := range []string{AttachmentDirect, AttachmentWithout, AttachmentAnother, AttachmentPrescription, AttachmentUndefined} {
		if !ValidAttachment(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidAttachment("Scan") {
		t.Error("expected Scan to be invalid")
	}
}

func gormTag(t *testing.T, model interface{}, field string) string {
	t.Helper()
	f, ok := reflect.TypeOf(model).FieldByName(field)
	if !ok {
		t.Fatalf("field %s not found", field)
	}
	return f.Tag.Get("gorm")
}

func TestExaminationLinksCascadeFromAppointment(t *testing.T) {
	tag := gormTag(t, Appointment{}, "Examinations")
	if !strings.Contains(tag, "OnDelete:CASCADE") {
		t.Errorf("expected examination links to cascade with the appointment, tag: %q", tag)
	}
}

func TestExaminationDeleteRestrictedWhileLinked(t *testing.T) {
	tag := gormTag(t, AppointmentExamination{}, "Examination")
	if !strings.Contains(tag, "OnDelete:RESTRICT") {
		t.Errorf("expected linked examinations to resist deletion, tag: %q", tag)
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{PaymentPending, PaymentPaid, PaymentRefunded} {
		if !ValidPaymentStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidPaymentStatus("Void") {
		t.Error("expected Void to be invalid")
	}
}
