package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Level string `validate:"required,oneof=debug info"`
	Max   int64  `validate:"gte=0"`
	Name  string `validate:"omitempty,alphanum,max=8"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		errContains string
	}{
		{"Valid", &sample{Level: "info", Max: 10, Name: "prim"}, ""},
		{"MissingLevel", &sample{}, "field is required"},
		{"BadLevel", &sample{Level: "trace"}, "must be one of [debug info]"},
		{"NegativeMax", &sample{Level: "info", Max: -1}, "must be at least 0"},
		{"NameTooLong", &sample{Level: "info", Name: "abcdefghij"}, "must not exceed 8"},
		{"NameInvalid", &sample{Level: "info", Name: "a-b"}, "invalid characters"},
		{"Nil", nil, "cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("ValidateStruct() error = %v, want containing %q", err, tt.errContains)
			}
		})
	}
}

func TestConfigValidator(t *testing.T) {
	tests := []struct {
		name        string
		build       func(cv *ConfigValidator)
		errContains string
	}{
		{"Valid", func(cv *ConfigValidator) {
			cv.LogLevel("LogLevel", "WARN").MetricNamespace("MetricsNamespace", "primitives", true).ByteLimit("Max", 0)
		}, ""},
		{"UnknownLevel", func(cv *ConfigValidator) { cv.LogLevel("LogLevel", "trace") }, `Config.LogLevel: unknown log level "trace"`},
		{"NamespaceRequiredWithMetrics", func(cv *ConfigValidator) { cv.MetricNamespace("MetricsNamespace", "", true) }, "required when metrics are enabled"},
		{"EmptyNamespaceWithoutMetrics", func(cv *ConfigValidator) { cv.MetricNamespace("MetricsNamespace", "", false) }, ""},
		{"NamespaceWithDash", func(cv *ConfigValidator) { cv.MetricNamespace("MetricsNamespace", "my-host", false) }, "not a valid metric name prefix"},
		{"NamespaceLeadingDigit", func(cv *ConfigValidator) { cv.MetricNamespace("MetricsNamespace", "9lives", true) }, "not a valid metric name prefix"},
		{"NegativeLimit", func(cv *ConfigValidator) { cv.ByteLimit("Max", -5) }, "must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("Config")
			tt.build(cv)
			err := cv.Validate()
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() = %v, want containing %q", err, tt.errContains)
			}
		})
	}
}

func TestConfigValidatorCollectsAllFields(t *testing.T) {
	cv := NewConfigValidator("Config").
		LogLevel("LogLevel", "").
		MetricNamespace("MetricsNamespace", "", true).
		ByteLimit("MaxDecompressedSize", -1)

	if len(cv.Errors()) != 3 {
		t.Fatalf("Errors() = %d, want 3", len(cv.Errors()))
	}
	err := cv.Validate()
	if !strings.Contains(err.Error(), "Config has 3 invalid fields") {
		t.Errorf("Validate() = %v", err)
	}
	for _, fieldErr := range cv.Errors() {
		if !errors.Is(err, fieldErr) {
			t.Errorf("joined error does not wrap %v", fieldErr)
		}
	}
}
