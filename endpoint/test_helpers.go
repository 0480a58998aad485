package endpoint

import "github.com/stretchr/testify/mock"

// MatchChanges creates a custom matcher for partial update arguments in mocks
func MatchChanges(matcher func(Changes) bool) interface{} {
	return mock.MatchedBy(matcher)
}
