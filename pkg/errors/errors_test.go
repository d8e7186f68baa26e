package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "new",
			err:  New(ErrCodeUnknownStyle, "unknown style %q", "retro"),
			want: `UNKNOWN_STYLE: unknown style "retro"`,
		},
		{
			name: "wrap",
			err:  Wrap(ErrCodeAssetLoad, errors.New("status 404"), "load avatar %s", "a.png"),
			want: "ASSET_LOAD: load avatar a.png: status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	err := Wrap(ErrCodeTimeout, context.DeadlineExceeded, "fetch golang/go")

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is should see the wrapped deadline")
	}
	if errors.Unwrap(err) != context.DeadlineExceeded {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
}

func TestIs(t *testing.T) {
	nested := Wrap(ErrCodeInternal, New(ErrCodeUnknownTheme, "unknown theme %q", "x"), "render classic")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", New(ErrCodeMissingSurface, "nil surface"), ErrCodeMissingSurface, true},
		{"other code", New(ErrCodeMissingSurface, "nil surface"), ErrCodeAssetLoad, false},
		{"outer of chain", nested, ErrCodeInternal, true},
		{"inner of chain", nested, ErrCodeUnknownTheme, true},
		{"behind fmt wrap", fmt.Errorf("style classic: %w", New(ErrCodeUnknownStyle, "x")), ErrCodeUnknownStyle, true},
		{"plain", errors.New("boom"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeUnknownStyle, "x"), ErrCodeUnknownStyle},
		{"outermost wins", Wrap(ErrCodeInternal, New(ErrCodeUnknownTheme, "x"), "y"), ErrCodeInternal},
		{"plain", errors.New("x"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(Wrap(ErrCodeNotFound, errors.New("404"), "repository a/b not found")); got != "repository a/b not found" {
		t.Errorf("UserMessage(coded) = %q", got)
	}
	if got := UserMessage(errors.New("disk full")); got != "disk full" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown theme", New(ErrCodeUnknownTheme, "x"), true},
		{"unknown style", New(ErrCodeUnknownStyle, "x"), true},
		{"wrapped style", Wrap(ErrCodeInternal, New(ErrCodeUnknownStyle, "x"), "y"), true},
		{"missing surface", New(ErrCodeMissingSurface, "x"), false},
		{"asset load", New(ErrCodeAssetLoad, "x"), false},
		{"plain", errors.New("x"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfiguration(tt.err); got != tt.want {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.want)
			}
		})
	}
}
