package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "not found error",
			err:  ErrNotFound,
			want: true,
		},
		{
			name: "wrapped not found error",
			err:  fmt.Errorf("load supplier: %w", ErrNotFound),
			want: true,
		},
		{
			name: "other error",
			err:  ErrDuplicateKey,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNotFound(tt.err)
			if got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "moq violation",
			err:  ErrMOQViolation,
			want: true,
		},
		{
			name: "insufficient stock",
			err:  ErrInsufficientStock,
			want: true,
		},
		{
			name: "wrapped referenced error",
			err:  errors.Join(ErrReferenced, errors.New("additional context")),
			want: true,
		},
		{
			name: "not found is not a validation error",
			err:  ErrNotFound,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidation(tt.err)
			if got != tt.want {
				t.Errorf("IsValidation() = %v, want %v", got, tt.want)
			}
		})
	}
}
