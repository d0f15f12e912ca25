package errors

import (
	"errors"
	"fmt"
	"testing"
)

type pathError struct {
	Path string
}

func (e pathError) Error() string { return "path error: " + e.Path }

func TestNew(t *testing.T) {
	err := New("bucket unreachable")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "bucket unreachable" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("connection refused")

	wrapped := Wrap(base, "failed to reach database")
	if wrapped == nil {
		t.Fatal("expected wrapped error, got nil")
	}
	if wrapped.Error() != "failed to reach database: connection refused" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidInput, "design %q rejected", "gown-1")
	if wrapped.Error() != `design "gown-1" rejected: invalid input` {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !Is(wrapped, ErrInvalidInput) {
		t.Error("wrapped error lost its sentinel")
	}

	if Wrapf(nil, "ignored %d", 1) != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestIs_DistinguishesSentinels(t *testing.T) {
	doubleWrapped := Wrap(Wrap(ErrNotApproved, "account check"), "login")

	if !Is(doubleWrapped, ErrNotApproved) {
		t.Error("nested wrapping lost ErrNotApproved")
	}
	if Is(doubleWrapped, ErrForbidden) {
		t.Error("ErrNotApproved must not match ErrForbidden")
	}
	if Is(doubleWrapped, ErrUnauthorized) {
		t.Error("ErrNotApproved must not match ErrUnauthorized")
	}
}

func TestAs(t *testing.T) {
	cause := pathError{Path: "designs/dresses"}
	wrapped := Wrap(fmt.Errorf("listing: %w", cause), "storage")

	var target pathError
	if !As(wrapped, &target) {
		t.Fatal("expected to extract pathError from the chain")
	}
	if target.Path != "designs/dresses" {
		t.Errorf("unexpected path: %q", target.Path)
	}
}

func TestSentinelMessages(t *testing.T) {
	for sentinel, want := range map[error]string{
		ErrNotFound:     "not found",
		ErrConflict:     "conflict",
		ErrInvalidInput: "invalid input",
		ErrUnauthorized: "unauthorized",
		ErrForbidden:    "forbidden",
		ErrNotApproved:  "not approved",
		ErrConfig:       "invalid configuration",
	} {
		if sentinel.Error() != want {
			t.Errorf("expected %q, got %q", want, sentinel.Error())
		}
	}
}
