package domain

import (
	"fmt"
	"strings"
)

// Stage is the sub-mode of the authentication flow.
type Stage string

const (
	StageLogin    Stage = "login"
	StageRegister Stage = "register"
)

func ParseStage(s string) (Stage, error) {
	switch st := Stage(strings.ToLower(strings.TrimSpace(s))); st {
	case StageLogin, StageRegister:
		return st, nil
	default:
		return "", fmt.Errorf("unknown stage %q", s)
	}
}

type AuthState struct {
	Stage       Stage
	Email       string
	Password    string
	Company     string
	ContactName string
}

func NewAuthState() AuthState {
	return AuthState{Stage: StageLogin}
}
