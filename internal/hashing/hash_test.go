package hashing

import (
	"regexp"
	"testing"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Hashing is idempotent under normalization: casing and surrounding
// whitespace never change the digest.
func TestIdentity_NormalizationInvariant(t *testing.T) {
	base := Identity("test@example.com")

	for _, v := range []string{
		"test@example.com",
		"TEST@EXAMPLE.COM",
		"  Test@Example.com  ",
		"\ttest@example.com\n",
	} {
		if got := Identity(v); got != base {
			t.Fatalf("Identity(%q) = %s, want %s", v, got, base)
		}
	}
}

// Empty and whitespace-only values produce no digest.
func TestIdentity_EmptyValues(t *testing.T) {
	for _, v := range []string{"", " ", "   ", "\t\n"} {
		if got := Identity(v); got != "" {
			t.Fatalf("Identity(%q) = %q, want empty", v, got)
		}
	}
}

// A non-empty digest is always 64 lowercase hex characters.
func TestIdentity_DigestShape(t *testing.T) {
	for _, v := range []string{"a", "John", "user@host.tld"} {
		got := Identity(v)
		if !hexDigest.MatchString(got) {
			t.Fatalf("Identity(%q) = %q, not 64 lowercase hex chars", v, got)
		}
	}
}

// Distinct normalized inputs produce distinct digests.
func TestIdentity_DistinctInputs(t *testing.T) {
	if Identity("alice@example.com") == Identity("bob@example.com") {
		t.Fatal("distinct inputs produced the same digest")
	}
}

// Phone hashing ignores formatting: only the digits matter.
func TestPhone_FormattingInsensitive(t *testing.T) {
	base := Phone("5551234567")

	for _, v := range []string{
		"5551234567",
		"(555) 123-4567",
		"555.123.4567",
		"555 123 4567",
	} {
		if got := Phone(v); got != base {
			t.Fatalf("Phone(%q) = %s, want %s", v, got, base)
		}
	}
}

// Values with no digits at all produce no digest.
func TestPhone_NoDigits(t *testing.T) {
	for _, v := range []string{"", "   ", "abc", "()- ."} {
		if got := Phone(v); got != "" {
			t.Fatalf("Phone(%q) = %q, want empty", v, got)
		}
	}
}

func TestPhone_DigestShape(t *testing.T) {
	if got := Phone("+1 (555) 123-4567"); !hexDigest.MatchString(got) {
		t.Fatalf("Phone digest %q is not 64 lowercase hex chars", got)
	}
}

// A country-code prefix changes the digit string and therefore the digest.
func TestPhone_CountryCodeMatters(t *testing.T) {
	if Phone("15551234567") == Phone("5551234567") {
		t.Fatal("country code prefix should change the digest")
	}
}
