package validators

import "strings"

// IsEmailValid is a syntactic check only; deliverability is not probed.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	local := email[:at]
	domain := email[at+1:]

	if strings.ContainsAny(local, " \t") || strings.ContainsAny(domain, " \t") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	return true
}
