package platform

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/StefanSilver/dtlpy/config"
)

// TokenSource builds the oauth2 token source from auth config.
// A static API token takes precedence; otherwise a refresh-token flow
// against the gateway token endpoint is used. Returns nil when no
// credentials are configured (local fake platform).
func TokenSource(ctx context.Context, cfg config.AuthConfig) oauth2.TokenSource {
	if cfg.APIToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.APIToken,
			TokenType:   "Bearer",
		})
	}

	if cfg.RefreshToken != "" && cfg.TokenURL != "" {
		oc := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.TokenURL,
			},
		}
		return oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	}

	return nil
}
