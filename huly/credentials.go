package huly

import "strings"

// Credentials authenticates against a Huly deployment with either a bearer
// token or an email/password pair. Exactly one form must be set. The zero
// value is invalid.
type Credentials struct {
	token    string
	email    string
	password string
}

// TokenCredentials builds bearer-token credentials.
func TokenCredentials(token string) Credentials {
	return Credentials{token: strings.TrimSpace(token)}
}

// PasswordCredentials builds email/password credentials.
func PasswordCredentials(email, password string) Credentials {
	return Credentials{email: strings.TrimSpace(email), password: password}
}

// Kind reports which credential form is populated: "token", "password", or
// "" when neither is set.
func (c Credentials) Kind() string {
	switch {
	case c.token != "":
		return "token"
	case c.email != "" || c.password != "":
		return "password"
	default:
		return ""
	}
}

func (c Credentials) validate() error {
	switch c.Kind() {
	case "token":
		if c.email != "" || c.password != "" {
			return &Error{Kind: KindInvalidInput, Message: "credentials: token and email/password are mutually exclusive"}
		}
		return nil
	case "password":
		if c.email == "" {
			return &Error{Kind: KindInvalidInput, Message: "credentials: email required"}
		}
		if c.password == "" {
			return &Error{Kind: KindInvalidInput, Message: "credentials: password required"}
		}
		return nil
	default:
		return &Error{Kind: KindInvalidInput, Message: "credentials: token or email/password required"}
	}
}

// String never reveals secret material; it is safe to log.
func (c Credentials) String() string {
	switch c.Kind() {
	case "token":
		return "token:<redacted>"
	case "password":
		return "password:" + c.email + ":<redacted>"
	default:
		return "none"
	}
}
