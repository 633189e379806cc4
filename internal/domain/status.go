package domain

// SubmissionStatus is one of StatusIdle, StatusLoading, StatusSuccess or StatusError.
type SubmissionStatus interface {
	Kind() string
	Message() string
	submissionStatus()
}

type StatusIdle struct{}

type StatusLoading struct {
	Msg string
}

type StatusSuccess struct {
	Msg string
}

type StatusError struct {
	Msg string
}

func (StatusIdle) Kind() string    { return "idle" }
func (StatusLoading) Kind() string { return "loading" }
func (StatusSuccess) Kind() string { return "success" }
func (StatusError) Kind() string   { return "error" }

func (StatusIdle) Message() string      { return "" }
func (s StatusLoading) Message() string { return s.Msg }
func (s StatusSuccess) Message() string { return s.Msg }
func (s StatusError) Message() string   { return s.Msg }

func (StatusIdle) submissionStatus()    {}
func (StatusLoading) submissionStatus() {}
func (StatusSuccess) submissionStatus() {}
func (StatusError) submissionStatus()   {}
