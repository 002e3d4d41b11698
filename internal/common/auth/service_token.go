// Package auth obtains service-to-service tokens for the generation service.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials configure the OAuth2 client credentials grant.
// TokenURL wins over the Keycloak realm fields.
type Credentials struct {
	TokenURL     string
	KeycloakURL  string
	Realm        string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Enabled reports whether enough is set to request a token.
func (c Credentials) Enabled() bool {
	return c.ClientID != "" && c.tokenURL() != ""
}

func (c Credentials) tokenURL() string {
	if c.TokenURL != "" {
		return c.TokenURL
	}
	if c.KeycloakURL != "" && c.Realm != "" {
		return KeycloakTokenURL(c.KeycloakURL, c.Realm)
	}
	return ""
}

// KeycloakTokenURL is the OpenID Connect token endpoint of a Keycloak realm.
func KeycloakTokenURL(baseURL, realm string) string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", strings.TrimRight(baseURL, "/"), realm)
}

// TokenSource caches the access token until shortly before it expires.
func TokenSource(ctx context.Context, c Credentials) oauth2.TokenSource {
	cfg := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.tokenURL(),
		Scopes:       c.Scopes,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return cfg.TokenSource(ctx)
}

// HTTPClient returns a client that sends a bearer token on every request.
func HTTPClient(ctx context.Context, c Credentials, timeout time.Duration) *http.Client {
	hc := oauth2.NewClient(ctx, TokenSource(ctx, c))
	hc.Timeout = timeout
	return hc
}
