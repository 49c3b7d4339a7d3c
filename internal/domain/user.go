package domain

import "strings"

// User pairs a stable identity issued by the Users Service with the user's current slack name.
type User struct {
	UUID  string `json:"uuid"`
	Slack string `json:"slack"`
}

// UUIDs returns identities of users in the same order.
func UUIDs(users []User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.UUID
	}
	return ids
}

// SlackNames returns slack names of users in the same order.
func SlackNames(users []User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Slack
	}
	return names
}

// NormalizeSlackName adds the leading '@' slack omits in the user_name field.
func NormalizeSlackName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "@") {
		return name
	}
	return "@" + name
}
