package commitpolicy

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Severity grades a rule outcome. The ordinal values follow the commitlint
// convention: disabled rules never report, warnings report without failing
// the run, errors reject the message.
type Severity int

const (
	// SeverityDisabled turns a rule off.
	SeverityDisabled Severity = 0
	// SeverityWarning reports violations without rejecting the message.
	SeverityWarning Severity = 1
	// SeverityError rejects the message on violation.
	SeverityError Severity = 2
)

// Condition flips the sense of a rule check.
type Condition string

const (
	// ConditionAlways requires the checked property to hold.
	ConditionAlways Condition = "always"
	// ConditionNever requires the checked property to be absent.
	ConditionNever Condition = "never"
)

// Rule stores one configured check: a severity, an activation condition and
// an optional rule-specific parameter (enum set, case convention or numeric
// bound).
type Rule struct {
	Severity  Severity
	Condition Condition
	Value     any
}

// Config is the commit policy descriptor. Rule names are unique by map
// construction; Validate enforces the remaining descriptor invariants.
type Config struct {
	Extends        []string
	Formatter      string
	Rules          map[string]Rule
	DefaultIgnores bool
}

//go:embed default.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the embedded repository commit policy.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		// The embedded policy is covered by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded commit policy: %v", err))
	}
	return cfg
}

// rawConfig mirrors the YAML descriptor shape before tuple decoding.
type rawConfig struct {
	Extends        []string             `yaml:"extends"`
	Formatter      string               `yaml:"formatter"`
	Rules          map[string]yaml.Node `yaml:"rules"`
	DefaultIgnores *bool                `yaml:"defaultIgnores"`
}

// ParseConfig decodes a YAML commit policy descriptor and validates it.
func ParseConfig(data []byte) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse commit policy: %w", err)
	}

	cfg := Config{
		Extends:   raw.Extends,
		Formatter: raw.Formatter,
		Rules:     make(map[string]Rule, len(raw.Rules)),
		// The linter's built-in ignore patterns apply unless the descriptor
		// opts out explicitly.
		DefaultIgnores: true,
	}
	if raw.DefaultIgnores != nil {
		cfg.DefaultIgnores = *raw.DefaultIgnores
	}

	for name, node := range raw.Rules {
		rule, err := decodeRule(node)
		if err != nil {
			return Config{}, fmt.Errorf("rule %s: %w", name, err)
		}
		cfg.Rules[name] = rule
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeRule decodes one [severity, condition, value] tuple.
func decodeRule(node yaml.Node) (Rule, error) {
	var tuple []yaml.Node
	if err := node.Decode(&tuple); err != nil {
		return Rule{}, fmt.Errorf("expected [severity, condition, value] tuple: %w", err)
	}
	if len(tuple) < 2 || len(tuple) > 3 {
		return Rule{}, fmt.Errorf("expected 2 or 3 tuple elements, got %d", len(tuple))
	}

	var severity int
	if err := tuple[0].Decode(&severity); err != nil {
		return Rule{}, fmt.Errorf("decode severity: %w", err)
	}
	var condition string
	if err := tuple[1].Decode(&condition); err != nil {
		return Rule{}, fmt.Errorf("decode condition: %w", err)
	}

	rule := Rule{
		Severity:  Severity(severity),
		Condition: Condition(condition),
	}
	if len(tuple) == 3 {
		var value any
		if err := tuple[2].Decode(&value); err != nil {
			return Rule{}, fmt.Errorf("decode value: %w", err)
		}
		rule.Value = normalizeValue(value)
	}
	return rule, nil
}

// normalizeValue converts YAML list values into string slices where possible
// so enum rules see one canonical shape.
func normalizeValue(value any) any {
	list, ok := value.([]any)
	if !ok {
		return value
	}
	result := make([]string, 0, len(list))
	for _, item := range list {
		text, ok := item.(string)
		if !ok {
			return value
		}
		result = append(result, text)
	}
	return result
}

// Validate enforces descriptor invariants: known rule names, severity drawn
// from {0,1,2}, a recognized condition and a parameter of the type the rule
// expects.
func (c Config) Validate() error {
	for _, name := range c.RuleNames() {
		rule := c.Rules[name]
		check, ok := ruleChecks[name]
		if !ok {
			return fmt.Errorf("rule %s: unknown rule", name)
		}
		if rule.Severity < SeverityDisabled || rule.Severity > SeverityError {
			return fmt.Errorf("rule %s: severity %d out of range", name, rule.Severity)
		}
		if rule.Condition != ConditionAlways && rule.Condition != ConditionNever {
			return fmt.Errorf("rule %s: unknown condition %q", name, rule.Condition)
		}
		if err := check.validateValue(rule.Value); err != nil {
			return fmt.Errorf("rule %s: %w", name, err)
		}
	}
	return nil
}

// RuleNames returns configured rule names in deterministic order.
func (c Config) RuleNames() []string {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
