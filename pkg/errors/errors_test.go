package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "mode",
			err:  New(ErrCodeInvalidMode, "unknown mode %q", "spiral"),
			want: `INVALID_MODE: unknown mode "spiral"`,
		},
		{
			name: "config with cause",
			err:  Wrap(ErrCodeInvalidConfig, errors.New("line 3: expected '='"), "parse %s", "config.toml"),
			want: "INVALID_CONFIG: parse config.toml: line 3: expected '='",
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

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "input file not found: %s", "tree.json")

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
	if errors.Unwrap(err) != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v, want fs.ErrNotExist", errors.Unwrap(err))
	}
	if err.Message != "input file not found: tree.json" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"config", New(ErrCodeInvalidConfig, "jitter 2 out of range"), ErrCodeInvalidConfig, true},
		{"other code", New(ErrCodeInvalidConfig, "jitter 2 out of range"), ErrCodeInvalidMode, false},
		{"behind fmt wrap", fmt.Errorf("render: %w", New(ErrCodeUnsupported, "convert to PDF")), ErrCodeUnsupported, true},
		{"outermost code wins", Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidMode, "unknown mode"), "decode JSON"), ErrCodeInvalidInput, true},
		{"inner code hidden", Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidMode, "unknown mode"), "decode JSON"), ErrCodeInvalidMode, false},
		{"plain", fs.ErrNotExist, ErrCodeFileNotFound, false},
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

func TestGetCodeFromValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"format", ValidateFormat("gif"), ErrCodeInvalidFormat},
		{"mode", ValidateMode("spiral", []string{"sun", "flat"}), ErrCodeInvalidMode},
		{"settings", ValidateSettings(SettingsInput{NodeRadius: 6, GhostOpacity: 150}), ErrCodeInvalidConfig},
		{"plain", errors.New("boom"), ""},
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
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "drops code and cause",
			err:  Wrap(ErrCodeInvalidConfig, errors.New("toml: bare keys"), "parse %s", "config.toml"),
			want: "parse config.toml",
		},
		{
			name: "plain error unchanged",
			err:  errors.New("signal: interrupt"),
			want: "signal: interrupt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
