package dashboard

import (
	"context"

	"go.uber.org/zap"

	"lastdrop/internal/backend"
	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
)

// beginAuth claims the auth form and returns the generation the request runs
// under.
func (p *Panel) beginAuth() (uint64, error) {
	if p.closed {
		return 0, ErrClosed
	}
	if p.token != "" {
		return 0, ErrAuthenticated
	}
	if p.authBusy {
		return 0, apperrors.ErrSubmissionInFlight
	}
	if err := p.auth.ValidateCredentials(); err != nil {
		return 0, err
	}
	p.authBusy = true
	p.message = ""
	return p.generation, nil
}

// Register creates a retailer account. On success the panel moves to the login
// stage without signing in.
func (p *Panel) Register(ctx context.Context) error {
	p.mu.Lock()
	gen, err := p.beginAuth()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	reg := backend.Registration{
		Credentials: backend.Credentials{Email: p.auth.Email, Password: p.auth.Password},
		Company:     p.auth.Company,
		ContactName: p.auth.ContactName,
	}
	p.mu.Unlock()

	err = p.backend.Register(ctx, reg)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.currentLocked(gen) {
		return err
	}
	p.authBusy = false

	if err != nil {
		p.logger.Warn("registration failed", zap.Error(err))
		p.message = MessageRegisterFailed
		return err
	}

	p.logger.Info("retailer registered", zap.String("email", reg.Email))
	p.message = MessageRegistered
	p.auth.Stage = domain.StageLogin
	return nil
}

// Login exchanges the credentials for a bearer token and, once it holds one,
// refreshes the order list. The refresh outcome does not affect the result.
func (p *Panel) Login(ctx context.Context) error {
	p.mu.Lock()
	gen, err := p.beginAuth()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	creds := backend.Credentials{Email: p.auth.Email, Password: p.auth.Password}
	p.mu.Unlock()

	token, err := p.backend.Login(ctx, creds)

	p.mu.Lock()
	if !p.currentLocked(gen) {
		p.mu.Unlock()
		return err
	}
	p.authBusy = false

	if err != nil {
		p.logger.Warn("login failed", zap.Error(err))
		p.message = MessageLoginFailed
		p.mu.Unlock()
		return err
	}

	p.token = token
	p.message = MessageSignedIn
	p.mu.Unlock()

	p.logger.Info("signed in", zap.String("email", creds.Email))
	p.FetchOrders(ctx)
	return nil
}
