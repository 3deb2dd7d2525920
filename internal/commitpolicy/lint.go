package commitpolicy

import "strings"

// Outcome is one rule violation report.
type Outcome struct {
	Rule     string
	Severity Severity
	Message  string
}

// Report aggregates the evaluation of one commit message against a policy.
type Report struct {
	Input    Message
	Ignored  bool
	Errors   []Outcome
	Warnings []Outcome
}

// Valid reports whether the message is acceptable: either matched by an
// ignore pattern or free of error-severity violations.
func (r Report) Valid() bool {
	return r.Ignored || len(r.Errors) == 0
}

// Lint evaluates one raw commit message against cfg. Rules run in
// deterministic name order; disabled rules are skipped. When the policy
// keeps default ignores enabled, messages matching a built-in ignore
// pattern (merge, revert, fixup and similar mechanical commits) pass
// without rule evaluation.
func Lint(cfg Config, raw string) Report {
	msg := ParseMessage(raw)
	report := Report{Input: msg}

	if cfg.DefaultIgnores && isDefaultIgnored(msg.Header) {
		report.Ignored = true
		return report
	}

	for _, name := range cfg.RuleNames() {
		rule := cfg.Rules[name]
		if rule.Severity == SeverityDisabled {
			continue
		}
		check := ruleChecks[name]
		ok, reason := check.evaluate(msg, rule)
		if ok {
			continue
		}
		outcome := Outcome{Rule: name, Severity: rule.Severity, Message: reason}
		if rule.Severity == SeverityError {
			report.Errors = append(report.Errors, outcome)
		} else {
			report.Warnings = append(report.Warnings, outcome)
		}
	}
	return report
}

// Format renders a report in a compact, one-line-per-finding form.
func (r Report) Format() string {
	if r.Ignored {
		return "ignored: matched a default ignore pattern"
	}
	var b strings.Builder
	for _, outcome := range r.Errors {
		b.WriteString("error " + outcome.Rule + ": " + outcome.Message + "\n")
	}
	for _, outcome := range r.Warnings {
		b.WriteString("warning " + outcome.Rule + ": " + outcome.Message + "\n")
	}
	if b.Len() == 0 {
		return "ok\n"
	}
	return b.String()
}
