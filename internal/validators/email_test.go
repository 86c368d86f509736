package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	t.Parallel()

	valid := []string{
		"anna@example.com",
		"first.last@sub.domain.io",
		"x@y.co",
	}
	for _, email := range valid {
		if !IsEmailValid(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@nodomain.com",
		"user@",
		"user@nodot",
		"user name@example.com",
		"user@@example.com",
	}
	for _, email := range invalid {
		if IsEmailValid(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}
