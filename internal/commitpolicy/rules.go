package commitpolicy

import (
	"fmt"
	"strings"
	"unicode"
)

// ruleCheck binds one rule name to its evaluation and parameter validation.
type ruleCheck struct {
	// evaluate reports whether the rule passes and, when it does not, a
	// human-readable reason.
	evaluate func(msg Message, rule Rule) (bool, string)
	// validateValue rejects parameters of the wrong type at config time.
	validateValue func(value any) error
}

// ruleChecks is the registry of supported rules. Every rule name appearing
// in a descriptor must be present here.
var ruleChecks = map[string]ruleCheck{
	"type-empty":         emptyCheck(func(m Message) string { return m.Type }, "type"),
	"scope-empty":        emptyCheck(func(m Message) string { return m.Scope }, "scope"),
	"subject-empty":      emptyCheck(func(m Message) string { return m.Subject }, "subject"),
	"type-enum":          enumCheck(func(m Message) string { return m.Type }, "type"),
	"scope-enum":         enumCheck(func(m Message) string { return m.Scope }, "scope"),
	"type-case":          caseCheck(func(m Message) string { return m.Type }, "type"),
	"scope-case":         caseCheck(func(m Message) string { return m.Scope }, "scope"),
	"subject-case":       caseCheck(func(m Message) string { return m.Subject }, "subject"),
	"subject-min-length": minLengthCheck(func(m Message) string { return m.Subject }, "subject"),
	"header-max-length":  maxLengthCheck(func(m Message) string { return m.Header }, "header"),
}

// emptyCheck builds the *-empty family. With condition "never" the field
// must be present; with "always" it must be absent.
func emptyCheck(field func(Message) string, label string) ruleCheck {
	return ruleCheck{
		evaluate: func(msg Message, rule Rule) (bool, string) {
			empty := strings.TrimSpace(field(msg)) == ""
			if rule.Condition == ConditionNever {
				if empty {
					return false, label + " may not be empty"
				}
				return true, ""
			}
			if !empty {
				return false, label + " must be empty"
			}
			return true, ""
		},
		validateValue: noValue,
	}
}

// enumCheck builds the *-enum family. Empty fields are left to the *-empty
// rules.
func enumCheck(field func(Message) string, label string) ruleCheck {
	return ruleCheck{
		evaluate: func(msg Message, rule Rule) (bool, string) {
			value := field(msg)
			if value == "" {
				return true, ""
			}
			allowed, _ := rule.Value.([]string)
			member := false
			for _, candidate := range allowed {
				if value == candidate {
					member = true
					break
				}
			}
			if rule.Condition == ConditionNever {
				if member {
					return false, fmt.Sprintf("%s must not be one of [%s]", label, strings.Join(allowed, ", "))
				}
				return true, ""
			}
			if !member {
				return false, fmt.Sprintf("%s must be one of [%s]", label, strings.Join(allowed, ", "))
			}
			return true, ""
		},
		validateValue: stringListValue,
	}
}

// caseCheck builds the *-case family. Only the conventions the descriptor
// uses are supported.
func caseCheck(field func(Message) string, label string) ruleCheck {
	return ruleCheck{
		evaluate: func(msg Message, rule Rule) (bool, string) {
			value := field(msg)
			if value == "" {
				return true, ""
			}
			convention, _ := rule.Value.(string)
			matches := matchesCase(value, convention)
			if rule.Condition == ConditionNever {
				if matches {
					return false, fmt.Sprintf("%s must not be %s", label, convention)
				}
				return true, ""
			}
			if !matches {
				return false, fmt.Sprintf("%s must be %s", label, convention)
			}
			return true, ""
		},
		validateValue: caseValue,
	}
}

// minLengthCheck builds the *-min-length family.
func minLengthCheck(field func(Message) string, label string) ruleCheck {
	return ruleCheck{
		evaluate: func(msg Message, rule Rule) (bool, string) {
			bound, _ := rule.Value.(int)
			length := len([]rune(field(msg)))
			if length < bound {
				return false, fmt.Sprintf("%s must not be shorter than %d characters, current length is %d", label, bound, length)
			}
			return true, ""
		},
		validateValue: intValue,
	}
}

// maxLengthCheck builds the *-max-length family.
func maxLengthCheck(field func(Message) string, label string) ruleCheck {
	return ruleCheck{
		evaluate: func(msg Message, rule Rule) (bool, string) {
			bound, _ := rule.Value.(int)
			length := len([]rune(field(msg)))
			if length > bound {
				return false, fmt.Sprintf("%s must not be longer than %d characters, current length is %d", label, bound, length)
			}
			return true, ""
		},
		validateValue: intValue,
	}
}

// matchesCase reports whether value satisfies a named case convention.
func matchesCase(value, convention string) bool {
	switch convention {
	case "lower-case":
		return value == strings.ToLower(value)
	case "upper-case":
		return value == strings.ToUpper(value)
	case "sentence-case":
		first := []rune(value)[0]
		return unicode.IsUpper(first) || !unicode.IsLetter(first)
	default:
		return false
	}
}

var caseConventions = []string{"lower-case", "upper-case", "sentence-case"}

func noValue(value any) error {
	if value != nil {
		return fmt.Errorf("unexpected parameter %v", value)
	}
	return nil
}

func stringListValue(value any) error {
	if _, ok := value.([]string); !ok {
		return fmt.Errorf("expected a string list parameter, got %T", value)
	}
	return nil
}

func caseValue(value any) error {
	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected a case convention parameter, got %T", value)
	}
	for _, convention := range caseConventions {
		if text == convention {
			return nil
		}
	}
	return fmt.Errorf("unknown case convention %q", text)
}

func intValue(value any) error {
	if _, ok := value.(int); !ok {
		return fmt.Errorf("expected a numeric parameter, got %T", value)
	}
	return nil
}
