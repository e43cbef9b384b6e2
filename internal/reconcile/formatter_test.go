package reconcile

import (
	"io"
	"log/slog"
	"testing"

	"oidcsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFormatterFormat(t *testing.T) {
	idToken := &models.IDTokenClaims{
		Issuer: "https://auth.example.com:8443/oidc",
	}
	info := &models.UserInfo{
		Subject:    "user.name@corp",
		Email:      "user@example.com",
		GivenName:  "User",
		FamilyName: "Name",
	}

	tests := []struct {
		name        string
		template    string
		providerURL string
		want        string
	}{
		{
			name:     "subject",
			template: "${oidc.user.subject}",
			want:     "user.name@corp",
		},
		{
			name:     "clean subject strips forbidden characters",
			template: "${oidc.user.subject.clean}",
			want:     "usernamecorp",
		},
		{
			name:     "mail",
			template: "${oidc.user.mail}",
			want:     "user@example.com",
		},
		{
			name:     "clean mail",
			template: "${oidc.user.mail.clean}",
			want:     "userexamplecom",
		},
		{
			name:     "given and family name composed",
			template: "${oidc.user.givenName}-${oidc.user.familyName}",
			want:     "User-Name",
		},
		{
			name:     "issuer host and port",
			template: "${oidc.issuer.host}-${oidc.issuer.port}",
			want:     "auth.example.com-8443",
		},
		{
			name:     "issuer path and protocol",
			template: "${oidc.issuer.protocol}-${oidc.issuer.path.clean}",
			want:     "https-/oidc",
		},
		{
			name:        "provider host",
			template:    "${oidc.provider.host.clean}",
			providerURL: "https://provider.example.com/auth",
			want:        "providerexamplecom",
		},
		{
			name:     "unresolved placeholder stays literal",
			template: "${does.not.exist}-${oidc.user.subject.clean}",
			want:     "${does.not.exist}-usernamecorp",
		},
		{
			name:     "literal text around placeholders",
			template: "user-${oidc.user.subject.clean}-suffix",
			want:     "user-usernamecorp-suffix",
		},
		{
			name:     "unterminated placeholder stays literal",
			template: "${oidc.user.subject",
			want:     "${oidc.user.subject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.template, tt.providerURL, testLogger())
			if got := f.Format(idToken, info); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterProviderVariablesAbsentWithoutURL(t *testing.T) {
	f := NewFormatter("${oidc.provider.host}", "", testLogger())

	got := f.Format(&models.IDTokenClaims{Issuer: "https://auth.example.com"}, &models.UserInfo{Subject: "s"})
	if got != "${oidc.provider.host}" {
		t.Errorf("expected literal placeholder without provider url, got %q", got)
	}
}

func TestFormatterMalformedProviderURLIgnored(t *testing.T) {
	f := NewFormatter("${oidc.provider.host}-${oidc.user.subject}", "://bad", testLogger())

	got := f.Format(&models.IDTokenClaims{Issuer: "https://auth.example.com"}, &models.UserInfo{Subject: "steve"})
	if got != "${oidc.provider.host}-steve" {
		t.Errorf("expected provider variables omitted, got %q", got)
	}
}

func TestFormatterUnparseableIssuer(t *testing.T) {
	f := NewFormatter("${oidc.issuer.host}-${oidc.issuer.clean}", "", testLogger())

	// A space in the host makes the issuer unparseable as a URL; the raw
	// value is still offered, only the derived variables are not.
	got := f.Format(&models.IDTokenClaims{Issuer: "https://bad host"}, &models.UserInfo{Subject: "s"})
	if got != "${oidc.issuer.host}-https//badhost" {
		t.Errorf("Format() = %q", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user.name", "username"},
		{"a:b c,d@e^f", "abcdef"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
