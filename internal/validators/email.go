package validators

import (
	"net"
	"strings"
)

// DomainChecker decides whether an e-mail's domain can receive mail.
type DomainChecker func(email string) bool

// NormalizeEmail lowercases and trims; logins compare the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

var _ DomainChecker = IsEmailDomainValid
