package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dd0wney/cluso-primitives/pkg/logging"
)

// metricNamePattern is the prometheus rule for metric name components
var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// ConfigValidator checks service settings that struct tags cannot express.
// Every failing field is collected and reported together.
type ConfigValidator struct {
	section string
	errs    []error
}

// NewConfigValidator creates a validator whose errors are prefixed with section
func NewConfigValidator(section string) *ConfigValidator {
	return &ConfigValidator{section: section}
}

func (cv *ConfigValidator) fail(field, format string, args ...any) {
	cv.errs = append(cv.errs, fmt.Errorf("%s.%s: %s", cv.section, field, fmt.Sprintf(format, args...)))
}

// LogLevel requires a level the logger understands
func (cv *ConfigValidator) LogLevel(field, value string) *ConfigValidator {
	if !logging.ValidLevel(value) {
		cv.fail(field, "unknown log level %q", value)
	}
	return cv
}

// MetricNamespace requires a usable prometheus namespace. An empty value is
// allowed unless metrics are enabled; a malformed one would make metric
// registration panic.
func (cv *ConfigValidator) MetricNamespace(field, value string, metricsEnabled bool) *ConfigValidator {
	switch {
	case value == "" && metricsEnabled:
		cv.fail(field, "required when metrics are enabled")
	case value != "" && !metricNamePattern.MatchString(value):
		cv.fail(field, "%q is not a valid metric name prefix", value)
	}
	return cv
}

// ByteLimit requires a non-negative size in bytes, where zero means no limit
func (cv *ConfigValidator) ByteLimit(field string, value int64) *ConfigValidator {
	if value < 0 {
		cv.fail(field, "byte limit %d must be non-negative", value)
	}
	return cv
}

// Errors returns the collected field errors
func (cv *ConfigValidator) Errors() []error {
	return cv.errs
}

// Validate returns nil, the single field error, or all of them joined
func (cv *ConfigValidator) Validate() error {
	switch len(cv.errs) {
	case 0:
		return nil
	case 1:
		return cv.errs[0]
	default:
		return fmt.Errorf("%s has %d invalid fields: %w", cv.section, len(cv.errs), errors.Join(cv.errs...))
	}
}
