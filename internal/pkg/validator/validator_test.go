package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-42D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b42d3a456426614174000",     // missing dashes
		"g23e4567-e89b-42d3-a456-426614174000", // invalid hex
		"123e4567-e89b-42d3-c456-426614174000", // bad variant
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-03-01"); !ok {
		t.Errorf("IsValidDate(2026-03-01) = false, want true")
	}
	for _, s := range []string{"2026-13-01", "01-03-2026", "2026/03/01", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "john.doe", "hr_manager-2"}
	invalid := []string{"ab", "has space", "way@wrong", ""}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP0001", "EMP12345"}
	invalid := []string{"EMP1", "emp0001", "0001", ""}
	for _, c := range valid {
		if !IsValidEmployeeCode(c) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidEmployeeCode(c) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", c)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["username"] != "username is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "username: username is required; password: password is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
