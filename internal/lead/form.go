// Package lead implements the lead capture form: one contact record, submitted
// once, with an idle/loading/success/error status.
package lead

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
)

const (
	MessageSending = "Sending…"
	MessageSuccess = "Thank you! We will get back to you shortly."
	MessageFailure = "Something went wrong. Please try again."
)

type Submitter interface {
	SubmitLead(ctx context.Context, lead domain.LeadRecord) error
}

type Form struct {
	submitter Submitter
	logger    *zap.Logger

	mu     sync.Mutex
	record domain.LeadRecord
	status domain.SubmissionStatus
	closed bool
}

func NewForm(submitter Submitter, logger *zap.Logger) *Form {
	return &Form{
		submitter: submitter,
		logger:    logger,
		record:    domain.NewLeadRecord(),
		status:    domain.StatusIdle{},
	}
}

func (f *Form) Record() domain.LeadRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

func (f *Form) Status() domain.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) SetName(v string)         { f.update(func(r *domain.LeadRecord) { r.Name = v }) }
func (f *Form) SetEmail(v string)        { f.update(func(r *domain.LeadRecord) { r.Email = v }) }
func (f *Form) SetRole(v domain.Role)    { f.update(func(r *domain.LeadRecord) { r.Role = v }) }
func (f *Form) SetCompany(v string)      { f.update(func(r *domain.LeadRecord) { r.Company = v }) }
func (f *Form) SetMessage(v string)      { f.update(func(r *domain.LeadRecord) { r.Message = v }) }
func (f *Form) SetConsent(v bool)        { f.update(func(r *domain.LeadRecord) { r.Consent = v }) }
func (f *Form) Fill(r domain.LeadRecord) { f.update(func(dst *domain.LeadRecord) { *dst = r }) }

func (f *Form) update(fn func(*domain.LeadRecord)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.record)
}

// Submit sends the current record. It returns ErrSubmissionInFlight while a
// previous submit is loading and a ValidationError when required fields are
// missing; neither changes the status. Transport and HTTP failures set the
// error status, keep the record and are returned to the caller.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if _, loading := f.status.(domain.StatusLoading); loading {
		f.mu.Unlock()
		return apperrors.ErrSubmissionInFlight
	}
	if err := f.record.Validate(); err != nil {
		f.mu.Unlock()
		return err
	}
	record := f.record
	f.status = domain.StatusLoading{Msg: MessageSending}
	f.mu.Unlock()

	err := f.submitter.SubmitLead(ctx, record)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		f.logger.Debug("discarding lead response after close")
		return err
	}

	if err != nil {
		f.logger.Warn("lead submission failed", zap.Error(err))
		f.status = domain.StatusError{Msg: MessageFailure}
		return err
	}

	f.logger.Info("lead submitted", zap.String("role", string(record.Role)))
	f.status = domain.StatusSuccess{Msg: MessageSuccess}
	f.record = domain.NewLeadRecord()
	return nil
}

// Close detaches the form; a response that resolves afterwards is ignored.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}
