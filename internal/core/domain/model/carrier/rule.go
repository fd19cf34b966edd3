package carrier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// RuleKind discriminates the matching rule variants a carrier can be
// configured with.
type RuleKind int

const (
	// RuleKindUnknown represents an invalid or undefined rule kind.
	RuleKindUnknown RuleKind = iota

	// RuleKindPrefix matches tracking numbers starting with a literal prefix.
	RuleKindPrefix

	// RuleKindRegex matches tracking numbers against a regular expression
	// tested against the full value.
	RuleKindRegex

	// RuleKindLength matches all-digit tracking numbers by exact digit count.
	// Only LENGTH carriers are probed against external accounts during
	// resolution.
	RuleKindLength
)

func getRuleKindStrings() map[RuleKind]string {
	return map[RuleKind]string{
		RuleKindUnknown: "UNKNOWN",
		RuleKindPrefix:  "PREFIX",
		RuleKindRegex:   "REGEX",
		RuleKindLength:  "LENGTH",
	}
}

// ParseRuleKind converts the wire/storage representation of a rule kind.
// Returns a validation error for anything but PREFIX, REGEX, or LENGTH.
func ParseRuleKind(s string) (RuleKind, error) {
	for kind, str := range getRuleKindStrings() {
		if kind != RuleKindUnknown && str == s {
			return kind, nil
		}
	}
	return RuleKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"ruleKind", fmt.Errorf("%q is not a valid rule kind", s))
}

// String returns the storage representation of the rule kind.
func (k RuleKind) String() string {
	if str, ok := getRuleKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the rule kind is one of the defined variants.
func (k RuleKind) Validate() error {
	if k != RuleKindPrefix && k != RuleKindRegex && k != RuleKindLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"ruleKind", fmt.Errorf("%d is not a valid rule kind", k))
	}
	return nil
}

// ErrMatchRuleIsNotConstructed is returned when attempting to use an
// improperly initialized MatchRule.
var ErrMatchRuleIsNotConstructed = errs.NewValueIsRequiredError(
	"match rule must be created via NewMatchRule constructor")

// MatchRule is the tagged variant (kind + raw value) a carrier uses to claim
// tracking numbers. The raw value is interpreted per kind: a literal prefix,
// a regular expression source, or a decimal digit count. REGEX patterns are
// compiled and LENGTH counts parsed at construction so that matching is
// infallible afterwards.
type MatchRule struct { //nolint:recvcheck //using for validation
	kind  RuleKind
	value string

	// derived per kind, populated at construction
	pattern     *regexp.Regexp
	digitLength int

	guard guard.ConstructorGuard
}

// NewMatchRule creates a MatchRule of the given kind from its raw value.
// Returns a validation error when the value is empty, a REGEX value does not
// compile, or a LENGTH value is not a positive integer.
func NewMatchRule(kind RuleKind, value string) (MatchRule, error) {
	if err := kind.Validate(); err != nil {
		return MatchRule{}, err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return MatchRule{}, errs.NewValueIsRequiredError("ruleValue")
	}

	rule := MatchRule{
		kind:  kind,
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	switch kind {
	case RuleKindRegex:
		pattern, err := regexp.Compile(value)
		if err != nil {
			return MatchRule{}, errs.NewValueIsInvalidErrorWithCause("ruleValue", err)
		}
		rule.pattern = pattern
	case RuleKindLength:
		length, err := strconv.Atoi(value)
		if err != nil || length <= 0 {
			return MatchRule{}, errs.NewValueIsInvalidErrorWithCause(
				"ruleValue", fmt.Errorf("%q is not a positive digit count", value))
		}
		rule.digitLength = length
	case RuleKindPrefix, RuleKindUnknown:
		// literal prefix needs no preprocessing
	}

	return rule, nil
}

// Validate ensures the MatchRule was created through the constructor.
func (r MatchRule) Validate() error {
	return r.guard.Validate(ErrMatchRuleIsNotConstructed)
}

// Kind returns the rule variant.
func (r MatchRule) Kind() RuleKind {
	return r.kind
}

// Value returns the raw rule value as configured.
func (r MatchRule) Value() string {
	return r.value
}

// DigitLength returns the configured digit count and true for LENGTH rules,
// zero and false otherwise.
func (r MatchRule) DigitLength() (int, bool) {
	if r.kind != RuleKindLength {
		return 0, false
	}
	return r.digitLength, true
}

// Matches reports whether the tracking number is claimed by this rule.
// LENGTH rules only ever match all-digit tracking numbers.
func (r MatchRule) Matches(trackingNumber kernel.TrackingNumber) bool {
	switch r.kind {
	case RuleKindPrefix:
		return strings.HasPrefix(trackingNumber.String(), r.value)
	case RuleKindRegex:
		return r.pattern != nil && r.pattern.MatchString(trackingNumber.String())
	case RuleKindLength:
		return trackingNumber.IsNumeric() && trackingNumber.Length() == r.digitLength
	case RuleKindUnknown:
		return false
	}
	return false
}
