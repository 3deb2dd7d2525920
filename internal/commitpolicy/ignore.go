package commitpolicy

import "regexp"

// defaultIgnorePatterns matches mechanical commit messages that commit
// linters conventionally exempt. The repository policy disables these via
// defaultIgnores: false, so merge and revert commits are linted too.
var defaultIgnorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Merge (branch|pull request|remote-tracking branch) `),
	regexp.MustCompile(`^Merged (.*?)(in|into) `),
	regexp.MustCompile(`^Automatic merge`),
	regexp.MustCompile(`^Revert "`),
	regexp.MustCompile(`^(fixup|squash|amend)! `),
	regexp.MustCompile(`^\d+\.\d+\.\d+`),
	regexp.MustCompile(`^Auto-merged (.*?) into `),
}

// isDefaultIgnored reports whether the header matches a built-in ignore
// pattern.
func isDefaultIgnored(header string) bool {
	for _, pattern := range defaultIgnorePatterns {
		if pattern.MatchString(header) {
			return true
		}
	}
	return false
}
