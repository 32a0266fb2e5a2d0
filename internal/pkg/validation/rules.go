package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule is a single field-level validation rule. Check returns an empty
// string when the rule holds, otherwise a human-readable violation message.
type Rule interface {
	Check() string
}

// Collect runs every rule and gathers the violation messages. Rules are
// never short-circuited so the caller sees all violations at once.
func Collect(rules ...Rule) []string {
	var messages []string
	for _, rule := range rules {
		if msg := rule.Check(); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}

// StringRule validates a string field
type StringRule struct {
	field    string
	value    string
	required bool
	maxLen   int
	contains string
}

// String creates a new string rule for the named field
func String(field, value string) *StringRule {
	return &StringRule{field: field, value: value}
}

// Required marks the field as required (non-blank)
func (r *StringRule) Required() *StringRule {
	r.required = true
	return r
}

// MaxLength caps the field length, counted in runes
func (r *StringRule) MaxLength(max int) *StringRule {
	r.maxLen = max
	return r
}

// Contains requires the value to contain the given substring
func (r *StringRule) Contains(substr string) *StringRule {
	r.contains = substr
	return r
}

// Check performs the validation
func (r *StringRule) Check() string {
	trimmed := strings.TrimSpace(r.value)
	if r.required && trimmed == "" {
		return fmt.Sprintf("%s is required", r.field)
	}

	// Remaining rules do not apply to empty optional values
	if trimmed == "" {
		return ""
	}

	if r.maxLen > 0 && utf8.RuneCountInString(r.value) > r.maxLen {
		return fmt.Sprintf("%s must be at most %d characters", r.field, r.maxLen)
	}
	if r.contains != "" && !strings.Contains(r.value, r.contains) {
		return fmt.Sprintf("%s must contain '%s'", r.field, r.contains)
	}
	return ""
}

// IntRule validates an integer field
type IntRule struct {
	field    string
	value    int
	min, max int
	bounded  bool
}

// Int creates a new integer rule for the named field
func Int(field string, value int) *IntRule {
	return &IntRule{field: field, value: value}
}

// Between requires the value to lie in [min, max]
func (r *IntRule) Between(min, max int) *IntRule {
	r.min = min
	r.max = max
	r.bounded = true
	return r
}

// Check performs the validation
func (r *IntRule) Check() string {
	if r.bounded && (r.value < r.min || r.value > r.max) {
		return fmt.Sprintf("%s must be between %d and %d", r.field, r.min, r.max)
	}
	return ""
}
