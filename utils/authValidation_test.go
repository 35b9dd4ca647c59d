package utils

import "testing"

func validRequest() RegisterRequest {
	return RegisterRequest{
		Username: "reception1",
		FullName: "Front Desk",
		Email:    "desk@example.com",
		Password: "Abcdef1",
		Role:     "Receptionist",
	}
}

func TestValidateRegisterRequestAccepted(t *testing.T) {
	if err := ValidateRegisterRequest(validRequest()); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateRegisterRequestPasswordRules(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"all lowercase", "abcdef", false},
		{"too short", "Ab1", false},
		{"missing digit", "Abcdef", false},
		{"missing upper", "abcdef1", false},
		{"missing lower", "ABCDEF1", false},
		{"minimum valid", "Abcde1", true},
		{"longer valid", "Sup3rSecret", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.Password = tc.password
			err := ValidateRegisterRequest(req)
			if tc.wantOK && err != nil {
				t.Errorf("expected %q accepted, got %v", tc.password, err)
			}
			if !tc.wantOK && err == nil {
				t.Errorf("expected %q rejected", tc.password)
			}
		})
	}
}

func TestValidateRegisterRequestRequiredFields(t *testing.T) {
	req := validRequest()
	req.Username = ""
	if err := ValidateRegisterRequest(req); err == nil {
		t.Error("expected missing username to be rejected")
	}

	req = validRequest()
	req.Username = "ab"
	if err := ValidateRegisterRequest(req); err == nil {
		t.Error("expected two-character username to be rejected")
	}

	req = validRequest()
	req.Email = "not-an-email"
	if err := ValidateRegisterRequest(req); err == nil {
		t.Error("expected malformed email to be rejected")
	}

	req = validRequest()
	req.Role = ""
	if err := ValidateRegisterRequest(req); err == nil {
		t.Error("expected missing role to be rejected")
	}
}

func TestValidatePasswordChange(t *testing.T) {
	if err := ValidatePasswordChange("Abcdef1"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
	if err := ValidatePasswordChange("abcdef"); err == nil {
		t.Error("expected weak password to be rejected")
	}
	if err := ValidatePasswordChange(""); err == nil {
		t.Error("expected empty password to be rejected")
	}
}
