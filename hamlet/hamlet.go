// Package hamlet gives tests a "to be, or not to be" vocabulary:
// one specification that must hold and its negation that must not.
package hamlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Hamlet struct {
	t      testing.TB
	truth  bool
	assert *assert.Assertions
}

// Specifications returns the positive (must_be) and negative (wont_be)
// expectation sets for t.
func Specifications(t testing.TB) (*Hamlet, *Hamlet) {
	t.Helper()
	checks := assert.New(t)
	return &Hamlet{t: t, truth: true, assert: checks}, &Hamlet{t: t, truth: false, assert: checks}
}

func (it *Hamlet) stop(ok bool) {
	if !ok {
		it.t.FailNow()
	}
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.Equal(expected, actual))
	} else {
		it.stop(it.assert.NotEqual(expected, actual))
	}
}

func (it *Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.Nil(actual))
	} else {
		it.stop(it.assert.NotNil(actual))
	}
}

func (it *Hamlet) True(actual bool) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.True(actual))
	} else {
		it.stop(it.assert.False(actual))
	}
}

func (it *Hamlet) Empty(actual interface{}) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.Empty(actual))
	} else {
		it.stop(it.assert.NotEmpty(actual))
	}
}

func (it *Hamlet) Length(actual interface{}, size int) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.Len(actual, size))
	} else if size == lengthOf(actual) {
		it.t.Errorf("should not have length %d: %v", size, actual)
		it.t.FailNow()
	}
}

func (it *Hamlet) Contains(container, element interface{}) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.Contains(container, element))
	} else {
		it.stop(it.assert.NotContains(container, element))
	}
}

func (it *Hamlet) Panic(fun func()) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.Panics(fun))
	} else {
		it.stop(it.assert.NotPanics(fun))
	}
}

func (it *Hamlet) ErrorIs(err, target error) {
	it.t.Helper()
	if it.truth {
		it.stop(it.assert.ErrorIs(err, target))
	} else {
		it.stop(it.assert.NotErrorIs(err, target))
	}
}
