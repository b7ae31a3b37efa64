// Package oauth implements the external identity handshake against Google.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleConnector struct {
	config *oauth2.Config
	logger logger.Logger
}

// NewGoogleConnector creates an IdentityConnector backed by Google OAuth.
func NewGoogleConnector(settings *config.OAuthSettings, logger logger.Logger) (users.IdentityConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid oauth settings: %w", err)
	}

	return &googleConnector{
		config: &oauth2.Config{
			ClientID:     settings.GoogleClientID,
			ClientSecret: settings.GoogleClientSecret,
			RedirectURL:  settings.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}, nil
}

func (c *googleConnector) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (c *googleConnector) Exchange(ctx context.Context, code string) (*users.ExternalIdentity, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := c.config.Client(ctx, token)
	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned status %d", resp.StatusCode)
	}

	var info struct {
		Email         string `json:"email"`
		Name          string `json:"name"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("provider returned no email address")
	}

	c.logger.Info("Exchanged authorization code for identity ", info.Email)
	return &users.ExternalIdentity{
		Email: info.Email,
		Name:  info.Name,
	}, nil
}
