package commitpolicy

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfigEncodesRepositoryPolicy(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultIgnores {
		t.Fatal("expected default ignores to be disabled")
	}

	scopeEnum, ok := cfg.Rules["scope-enum"]
	if !ok {
		t.Fatal("expected scope-enum rule")
	}
	wantScopes := []string{"be", "fe", "docs", "ci"}
	if !reflect.DeepEqual(scopeEnum.Value, wantScopes) {
		t.Fatalf("scope enum = %v, want %v", scopeEnum.Value, wantScopes)
	}

	typeEnum, ok := cfg.Rules["type-enum"]
	if !ok {
		t.Fatal("expected type-enum rule")
	}
	wantTypes := []string{"feat", "chore", "fix", "perf", "refactor"}
	if !reflect.DeepEqual(typeEnum.Value, wantTypes) {
		t.Fatalf("type enum = %v, want %v", typeEnum.Value, wantTypes)
	}

	minLength, ok := cfg.Rules["subject-min-length"]
	if !ok {
		t.Fatal("expected subject-min-length rule")
	}
	if minLength.Value != 10 {
		t.Fatalf("subject minimum length = %v, want 10", minLength.Value)
	}

	for _, name := range cfg.RuleNames() {
		rule := cfg.Rules[name]
		if rule.Severity < SeverityDisabled || rule.Severity > SeverityError {
			t.Fatalf("rule %s severity %d out of range", name, rule.Severity)
		}
	}
}

func TestParseConfigReadsDescriptor(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
rules:
  type-empty: [2, never]
  header-max-length: [1, always, 72]
`))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.DefaultIgnores {
		t.Fatal("expected default ignores to default to enabled")
	}
	if cfg.Rules["header-max-length"].Severity != SeverityWarning {
		t.Fatalf("header-max-length severity = %d, want warning", cfg.Rules["header-max-length"].Severity)
	}
	if cfg.Rules["header-max-length"].Value != 72 {
		t.Fatalf("header-max-length bound = %v, want 72", cfg.Rules["header-max-length"].Value)
	}
}

func TestParseConfigRejectsUnknownRule(t *testing.T) {
	_, err := ParseConfig([]byte(`
rules:
  body-leading-blank: [2, always]
`))
	if err == nil {
		t.Fatal("expected unknown rule error")
	}
	if !strings.Contains(err.Error(), "unknown rule") {
		t.Fatalf("expected unknown rule error, got %v", err)
	}
}

func TestParseConfigRejectsSeverityOutOfRange(t *testing.T) {
	_, err := ParseConfig([]byte(`
rules:
  type-empty: [3, never]
`))
	if err == nil {
		t.Fatal("expected severity range error")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected severity range error, got %v", err)
	}
}

func TestParseConfigRejectsUnknownCondition(t *testing.T) {
	_, err := ParseConfig([]byte(`
rules:
  type-empty: [2, sometimes]
`))
	if err == nil {
		t.Fatal("expected condition error")
	}
}

func TestParseConfigRejectsWrongParameterType(t *testing.T) {
	_, err := ParseConfig([]byte(`
rules:
  subject-min-length: [2, always, short]
`))
	if err == nil {
		t.Fatal("expected parameter type error")
	}
}

func TestParseConfigRejectsMalformedTuple(t *testing.T) {
	_, err := ParseConfig([]byte(`
rules:
  type-empty: [2]
`))
	if err == nil {
		t.Fatal("expected tuple arity error")
	}
}

func TestRuleNamesAreDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	first := cfg.RuleNames()
	second := cfg.RuleNames()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rule name order changed: %v vs %v", first, second)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Fatalf("rule names not sorted at %d: %v", i, first)
		}
	}
}
