// Package mocks holds testify mocks of the interfaces used across services
// and handlers.
package mocks

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// typed returns args.Get(i) as T, or the zero value when it is nil.
func typed[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}
