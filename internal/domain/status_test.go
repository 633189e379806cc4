package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionStatus_Kinds(t *testing.T) {
	statuses := []SubmissionStatus{
		StatusIdle{},
		StatusLoading{Msg: "Sending…"},
		StatusSuccess{Msg: "done"},
		StatusError{Msg: "failed"},
	}

	var kinds []string
	for _, s := range statuses {
		kinds = append(kinds, s.Kind())
	}

	assert.Equal(t, []string{"idle", "loading", "success", "error"}, kinds)
}

func TestSubmissionStatus_Messages(t *testing.T) {
	assert.Empty(t, StatusIdle{}.Message())
	assert.Equal(t, "Sending…", StatusLoading{Msg: "Sending…"}.Message())
	assert.Equal(t, "done", StatusSuccess{Msg: "done"}.Message())
	assert.Equal(t, "failed", StatusError{Msg: "failed"}.Message())
}
