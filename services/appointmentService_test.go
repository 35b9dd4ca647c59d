package services

import (
	"RadiologyCenter/models"
	"testing"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	s := &AppointmentService{}
	req := AppointmentRequest{PatientID: 1}
	if err := s.normalize(&req); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if req.TransferType != models.TransferCash {
		t.Errorf("expected default transfer type Cash, got %q", req.TransferType)
	}
	if req.Attachment != models.AttachmentUndefined {
		t.Errorf("expected default attachment Undefined, got %q", req.Attachment)
	}
	if req.Status != models.StatusPending {
		t.Errorf("expected default status Pending, got %q", req.Status)
	}
}

func TestNormalizeRejectsUnknownEnums(t *testing.T) {
	s := &AppointmentService{}
	cases := []AppointmentRequest{
		{TransferType: "Teleport"},
		{Attachment: "Fax"},
		{Status: "Paused"},
	}
	for _, req := range cases {
		err := s.normalize(&req)
		if err == nil {
			t.Errorf("expected %+v to be rejected", req)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	}
}

func TestNormalizeAcceptsAnyStatusTransitionValue(t *testing.T) {
	s := &AppointmentService{}
	for _, status := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted} {
		req := AppointmentRequest{Status: status}
		if err := s.normalize(&req); err != nil {
			t.Errorf("status %q: %v", status, err)
		}
	}
}

func TestDedupePreservesOrder(t *testing.T) {
	got := dedupe([]uint{3, 1, 3, 2, 1})
	want := []uint{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if dedupe(nil) != nil {
		t.Error("expected nil for empty input")
	}
}
