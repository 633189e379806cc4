package dashboard

import (
	"context"

	"go.uber.org/zap"

	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
)

// FetchOrders replaces the order list with the backend's. Failures are logged
// and returned but never reach the panel message; the list keeps its previous
// value.
func (p *Panel) FetchOrders(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.token == "" {
		p.mu.Unlock()
		return apperrors.ErrNoSession
	}
	token, gen := p.token, p.generation
	p.fetchSeq++
	seq := p.fetchSeq
	p.mu.Unlock()

	orders, err := p.backend.ListOrders(ctx, token)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.currentLocked(gen) {
		return err
	}
	if err != nil {
		p.logger.Warn("order list refresh failed", zap.Error(err))
		return err
	}
	if seq < p.appliedFetch {
		p.logger.Debug("dropping stale order list", zap.Uint64("seq", seq))
		return nil
	}

	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	p.orders = orders
	p.appliedFetch = seq
	return nil
}

// CreateOrder submits the new-order buffer. On success the buffer is reset and
// the list re-fetched; on failure the buffer is kept.
func (p *Panel) CreateOrder(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.token == "" {
		p.mu.Unlock()
		return apperrors.ErrNoSession
	}
	if p.orderBusy {
		p.mu.Unlock()
		return apperrors.ErrSubmissionInFlight
	}
	if err := p.draft.Validate(); err != nil {
		p.mu.Unlock()
		return err
	}
	token, gen := p.token, p.generation
	order := p.draft.Clone()
	p.orderBusy = true
	p.mu.Unlock()

	err := p.backend.CreateOrder(ctx, token, order)

	p.mu.Lock()
	if !p.currentLocked(gen) {
		p.mu.Unlock()
		return err
	}
	p.orderBusy = false

	if err != nil {
		p.logger.Warn("order creation failed", zap.String("orderNumber", order.OrderNumber), zap.Error(err))
		p.message = MessageOrderFailed
		p.mu.Unlock()
		return err
	}

	p.draft = domain.NewOrder()
	p.mu.Unlock()

	p.logger.Info("order created", zap.String("orderNumber", order.OrderNumber))
	p.FetchOrders(ctx)
	return nil
}
