package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

// FieldError reports a single constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors aggregates every violation found on a request object.
type Errors struct {
	Errors []FieldError `json:"errors"`
}

func (e *Errors) Error() string {
	return "validation error"
}

// Collector evaluates declarative rules against one request object.
type Collector struct {
	violations []FieldError
}

func (c *Collector) add(field, code, message string) {
	c.violations = append(c.violations, FieldError{Field: field, Code: code, Message: message})
}

// Required flags empty string values.
func (c *Collector) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, "required", fmt.Sprintf("%s can't be blank", field))
	}
}

// MaxLen flags values longer than max characters.
func (c *Collector) MaxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		c.add(field, "too_long", fmt.Sprintf("%s can't exceed %d characters", field, max))
	}
}

// Email flags non-empty values that do not parse as an address.
func (c *Collector) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		c.add(field, "invalid_email", fmt.Sprintf("%s should be a valid email", field))
	}
}

// OneOf flags non-empty values outside the allowed set.
func (c *Collector) OneOf(field, value string, options ...string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, option := range options {
		if value == option {
			return
		}
	}
	c.add(field, "invalid_option", fmt.Sprintf("%s should be one of %s", field, strings.Join(options, ", ")))
}

// Err returns the aggregated violations, or nil when every rule passed.
func (c *Collector) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Errors{Errors: c.violations}
}
