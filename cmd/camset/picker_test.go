package main

import (
	"errors"
	"testing"
)

func TestMirrorFailure(t *testing.T) {
	serveErr := errors.New("accept tcp: use of closed network connection")

	failed := make(chan error, 1)
	failed <- serveErr
	close(failed)

	running := make(chan error, 1)

	stopped := make(chan error, 1)
	close(stopped)

	tests := []struct {
		name string
		errs <-chan error
		want error
	}{
		{"serve failed", failed, serveErr},
		{"still serving", running, nil},
		{"clean stop", stopped, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mirrorFailure(tt.errs); got != tt.want {
				t.Errorf("mirrorFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}
