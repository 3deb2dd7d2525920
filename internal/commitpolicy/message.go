package commitpolicy

import (
	"regexp"
	"strings"
)

// headerPattern splits a conventional-commit header into type, optional
// parenthesized scope, optional breaking-change marker and subject.
var headerPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]*)\))?(!)?:\s?(.*)$`)

// Message is one parsed commit message. Fields left empty when the header
// does not follow the conventional form; the *-empty rules report those.
type Message struct {
	Raw      string
	Header   string
	Type     string
	Scope    string
	Breaking bool
	Subject  string
	Body     string
}

// ParseMessage splits a raw commit message into header, structured header
// fields and body. Parsing never fails: malformed headers produce a Message
// with empty structured fields so rule evaluation can report them.
func ParseMessage(raw string) Message {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	header, body, _ := strings.Cut(normalized, "\n")

	msg := Message{
		Raw:    raw,
		Header: header,
		Body:   strings.TrimLeft(body, "\n"),
	}

	parts := headerPattern.FindStringSubmatch(header)
	if parts == nil {
		return msg
	}
	msg.Type = parts[1]
	msg.Scope = parts[2]
	msg.Breaking = parts[3] == "!"
	msg.Subject = parts[4]
	return msg
}
