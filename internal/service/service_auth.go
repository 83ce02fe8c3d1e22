package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kirubhel/redcross-client/internal/adapter"
	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/store"
	"github.com/kirubhel/redcross-client/models"
)

type authService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) AuthService {
	return &authService{sessions: sessions, adapter: serverAdapter, logger: log}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}

	session := models.Session{
		Token:   token.SignedString,
		UserID:  token.UserID,
		SavedAt: time.Now(),
	}
	if err = a.sessions.Save(ctx, session); err != nil {
		// the token is live in the adapter, only the restart persistence
		// is lost; surface it so the user knows re-login awaits them
		return session, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Info().Str("func", "Login").Int64("user_id", session.UserID).Msg("logged in")
	return session, nil
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Get(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if tokenExpired(session.Token) {
		if err = a.sessions.Delete(ctx); err != nil {
			a.logger.Error().Err(err).Str("func", "RestoreSession").Msg("drop expired session failed")
		}
		return models.Session{}, ErrTokenExpired
	}

	a.adapter.SetToken(session.Token)

	a.logger.Info().Str("func", "RestoreSession").Int64("user_id", session.UserID).Msg("session restored")
	return session, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("drop session: %w", err)
	}
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Opaque tokens and tokens
// without an expiry are treated as live.
func tokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return expiry.Before(time.Now())
}
