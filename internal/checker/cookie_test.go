package checker

import "testing"

func TestParseSetCookie_AllAttributes(t *testing.T) {
	attrs := ParseSetCookie("session=abc123; HttpOnly; Secure; SameSite=Strict; Path=/; Max-Age=3600")

	if attrs.Name != "session" {
		t.Errorf("expected name %q, got %q", "session", attrs.Name)
	}
	if attrs.Value != "abc123" {
		t.Errorf("expected value %q, got %q", "abc123", attrs.Value)
	}
	if !attrs.HTTPOnly {
		t.Error("expected HttpOnly to be set")
	}
	if !attrs.Secure {
		t.Error("expected Secure to be set")
	}
	if attrs.SameSite == nil || *attrs.SameSite != "Strict" {
		t.Errorf("expected SameSite=Strict, got %v", attrs.SameSite)
	}
	if attrs.Path == nil || *attrs.Path != "/" {
		t.Errorf("expected Path=/, got %v", attrs.Path)
	}
	if attrs.MaxAge == nil || *attrs.MaxAge != 3600 {
		t.Errorf("expected MaxAge=3600, got %v", attrs.MaxAge)
	}
	if attrs.Expires != nil {
		t.Errorf("expected Expires absent, got %q", *attrs.Expires)
	}
	if attrs.Domain != nil {
		t.Errorf("expected Domain absent, got %q", *attrs.Domain)
	}
}

func TestParseSetCookie_BareNameValue(t *testing.T) {
	attrs := ParseSetCookie("id=xyz")

	if attrs.Name != "id" || attrs.Value != "xyz" {
		t.Errorf("unexpected name/value: %q=%q", attrs.Name, attrs.Value)
	}
	if attrs.HTTPOnly || attrs.Secure {
		t.Error("expected no flags on a bare cookie")
	}
	if attrs.SameSite != nil || attrs.Path != nil || attrs.Domain != nil || attrs.Expires != nil || attrs.MaxAge != nil {
		t.Errorf("expected all optional attributes absent: %+v", attrs)
	}
}

func TestParseSetCookie_NoEquals(t *testing.T) {
	attrs := ParseSetCookie("just-a-token")

	if attrs.Name != "just-a-token" {
		t.Errorf("expected the whole segment as name, got %q", attrs.Name)
	}
	if attrs.Value != "" {
		t.Errorf("expected empty value, got %q", attrs.Value)
	}
}

func TestParseSetCookie_Empty(t *testing.T) {
	attrs := ParseSetCookie("")

	if attrs.Name != "" || attrs.Value != "" {
		t.Errorf("expected empty name and value, got %q=%q", attrs.Name, attrs.Value)
	}
}

func TestParseSetCookie_ValueContainsEquals(t *testing.T) {
	attrs := ParseSetCookie("token=dG9rZW4=.c2ln==")

	if attrs.Value != "dG9rZW4=.c2ln==" {
		t.Errorf("expected value split on first '=' only, got %q", attrs.Value)
	}
}

func TestParseSetCookie_ExpiresVerbatim(t *testing.T) {
	attrs := ParseSetCookie("id=1; Expires=Wed, 21 Oct 2026 07:28:00 GMT")

	if attrs.Expires == nil {
		t.Fatal("expected Expires to be present")
	}
	if *attrs.Expires != "Wed, 21 Oct 2026 07:28:00 GMT" {
		t.Errorf("expected Expires captured verbatim, got %q", *attrs.Expires)
	}
}

func TestParseSetCookie_CaseInsensitiveKeys(t *testing.T) {
	attrs := ParseSetCookie("id=1; HTTPONLY; SECURE; samesite=lax; PATH=/app")

	if !attrs.HTTPOnly || !attrs.Secure {
		t.Error("expected flag keys to match case-insensitively")
	}
	if attrs.SameSite == nil || *attrs.SameSite != "lax" {
		t.Errorf("expected SameSite value casing preserved, got %v", attrs.SameSite)
	}
	if attrs.Path == nil || *attrs.Path != "/app" {
		t.Errorf("expected Path=/app, got %v", attrs.Path)
	}
}

func TestParseSetCookie_InvalidMaxAge(t *testing.T) {
	attrs := ParseSetCookie("id=1; Max-Age=soon")

	if attrs.MaxAge == nil {
		t.Fatal("expected MaxAge present for a non-numeric value")
	}
	if *attrs.MaxAge != 0 {
		t.Errorf("expected non-numeric Max-Age to degrade to 0, got %d", *attrs.MaxAge)
	}
}

func TestParseSetCookie_RepeatedAttributeLastWins(t *testing.T) {
	attrs := ParseSetCookie("id=1; Path=/first; Path=/second")

	if attrs.Path == nil || *attrs.Path != "/second" {
		t.Errorf("expected the last Path occurrence to win, got %v", attrs.Path)
	}
}

func TestParseSetCookie_UnknownAttributesIgnored(t *testing.T) {
	attrs := ParseSetCookie("id=1; Partitioned; Priority=High; Secure")

	if !attrs.Secure {
		t.Error("expected known attributes to still parse")
	}
	if attrs.SameSite != nil || attrs.Path != nil || attrs.Domain != nil {
		t.Errorf("expected unknown segments to be ignored: %+v", attrs)
	}
}

func TestParseSetCookie_EmptyAttributeValueIsPresent(t *testing.T) {
	attrs := ParseSetCookie("id=1; Path=; Domain=")

	if attrs.Path == nil || *attrs.Path != "" {
		t.Errorf("expected Path present with empty value, got %v", attrs.Path)
	}
	if attrs.Domain == nil || *attrs.Domain != "" {
		t.Errorf("expected Domain present with empty value, got %v", attrs.Domain)
	}
}
