package domain

import (
	"fmt"
	"regexp"
)

// CommandKind names a team operation requested through a slash command.
type CommandKind string

// Command kinds.
const (
	CommandActivate   CommandKind = "activate"
	CommandDeactivate CommandKind = "deactivate"
	CommandGetTeam    CommandKind = "get"
)

// NewCommandKind validates s and returns the matching CommandKind.
func NewCommandKind(s string) (CommandKind, error) {
	kind := CommandKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown command %q (must be one of: %s, %s, %s): %w",
			s, CommandActivate, CommandDeactivate, CommandGetTeam, ErrNotImplemented)
	}
	return kind, nil
}

// IsValid checks if the kind is known.
func (k CommandKind) IsValid() bool {
	return k == CommandActivate || k == CommandDeactivate || k == CommandGetTeam
}

// SlackCommand is a single inbound slash command.
type SlackCommand struct {
	From string
	Text string
}

// A mention starts the text or follows a non-word character, so e-mail addresses
// are skipped. Inner '.', '_' and '-' are allowed, trailing ones are punctuation.
var mentionPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_@])(@[\p{L}\p{N}]+(?:[._-][\p{L}\p{N}]+)*)`)

// ParseMentions returns slack names mentioned in text in order of first appearance.
// Repeated mentions of the same name are reported once.
func ParseMentions(text string) []string {
	found := mentionPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(found))
	mentions := make([]string, 0, len(found))
	for _, match := range found {
		m := match[1]
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		mentions = append(mentions, m)
	}
	return mentions
}
