package reconcile

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"oidcsync/internal/models"
)

// cleanPattern matches the characters a local identifier must not contain.
var cleanPattern = regexp.MustCompile(`[.:\s,@^]`)

// Formatter builds a candidate local identifier from claims by substituting
// ${variable} placeholders in a configured template. The result is a
// candidate only; uniqueness is the engine's job.
type Formatter struct {
	template    string
	providerURL *url.URL
	logger      *slog.Logger
}

// NewFormatter parses the optional provider URL once. A malformed provider
// URL is not fatal: the derived variables are simply never offered.
func NewFormatter(template, providerURL string, logger *slog.Logger) *Formatter {
	f := &Formatter{
		template: template,
		logger:   logger,
	}

	if providerURL != "" {
		parsed, err := url.Parse(providerURL)
		if err != nil {
			logger.Warn("ignoring malformed provider url", "url", providerURL, "error", err)
		} else {
			f.providerURL = parsed
		}
	}

	return f
}

// Format resolves the template against the recognized claim variables.
// Placeholders with no matching variable are left as literal text.
func (f *Formatter) Format(idToken *models.IDTokenClaims, info *models.UserInfo) string {
	vars := make(map[string]string)

	putVariable(vars, "oidc.user.subject", info.Subject)
	putVariable(vars, "oidc.user.mail", info.Email)
	putVariable(vars, "oidc.user.familyName", info.FamilyName)
	putVariable(vars, "oidc.user.givenName", info.GivenName)

	if f.providerURL != nil {
		putVariable(vars, "oidc.provider", f.providerURL.String())
		putVariable(vars, "oidc.provider.host", f.providerURL.Hostname())
		putVariable(vars, "oidc.provider.path", f.providerURL.Path)
		vars["oidc.provider.protocol"] = f.providerURL.Scheme
		vars["oidc.provider.port"] = f.providerURL.Port()
	}

	putVariable(vars, "oidc.issuer", idToken.Issuer)
	if issuerURL, err := url.Parse(idToken.Issuer); err == nil {
		putVariable(vars, "oidc.issuer.host", issuerURL.Hostname())
		putVariable(vars, "oidc.issuer.path", issuerURL.Path)
		vars["oidc.issuer.protocol"] = issuerURL.Scheme
		vars["oidc.issuer.port"] = issuerURL.Port()
	} else {
		f.logger.Debug("issuer is not a parseable url, omitting derived variables", "issuer", idToken.Issuer)
	}

	return substitute(f.template, vars)
}

// Clean strips the characters an identifier must not contain.
func Clean(s string) string {
	return cleanPattern.ReplaceAllString(s, "")
}

func putVariable(vars map[string]string, key, value string) {
	vars[key] = value
	vars[key+".clean"] = Clean(value)
}

// substitute replaces ${name} placeholders with their mapped values, leaving
// unresolved placeholders untouched.
func substitute(template string, vars map[string]string) string {
	var b strings.Builder

	for i := 0; i < len(template); {
		if template[i] == '$' && i+1 < len(template) && template[i+1] == '{' {
			if end := strings.IndexByte(template[i:], '}'); end >= 0 {
				name := template[i+2 : i+end]
				if value, ok := vars[name]; ok {
					b.WriteString(value)
					i += end + 1
					continue
				}
			}
		}

		b.WriteByte(template[i])
		i++
	}

	return b.String()
}
