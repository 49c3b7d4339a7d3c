package service

import (
	"fmt"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
)

// assertCount returns newErr(expected, actual) when the counts differ.
func assertCount(expected, actual int, newErr func(expected, actual int) error) error {
	if expected != actual {
		return newErr(expected, actual)
	}
	return nil
}

func directoryMismatch(expected, actual int) error {
	return &domain.DirectoryMismatchError{Expected: expected, Actual: actual}
}

func membersMismatch(expected, actual int) error {
	return &domain.TeamExchangeError{
		Message: fmt.Sprintf("Team members mismatch between request and response from Teams Service: "+
			"sent %d, received %d", expected, actual),
	}
}

func errNoSlackNames(text string) error {
	return &domain.MalformedCommandError{
		Found:    0,
		Expected: domain.TeamSize,
		Message: fmt.Sprintf("We didn't find any slack name in your command: '%s'. Found 0, "+
			"but you must write %d slack names to activate a team.", text, domain.TeamSize),
	}
}

func errWrongTeamSize(found int, text string) error {
	return &domain.MalformedCommandError{
		Found:    found,
		Expected: domain.TeamSize,
		Message: fmt.Sprintf("We found %d slack names in your command: '%s'. But size of the team must be %d.",
			found, text, domain.TeamSize),
	}
}

func errExpectOneSlackName(found int, text string) error {
	return &domain.MalformedCommandError{
		Found:    found,
		Expected: 1,
		Message:  fmt.Sprintf("We found %d slack names in your command: '%s'. But expect one slack name.", found, text),
	}
}
