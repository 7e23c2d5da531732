package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualRequestId(t *testing.T) {
	testCases := []struct {
		description string
		a, b        interface{}
		expect      bool
	}{
		{description: "same int", a: 1, b: 1, expect: true},
		{description: "decoded float vs int", a: float64(7), b: 7, expect: true},
		{description: "string ids", a: "abc", b: "abc", expect: true},
		{description: "different numbers", a: 1, b: 2, expect: false},
		{description: "number vs string", a: 1, b: "1", expect: false},
		{description: "nil vs number", a: nil, b: 1, expect: false},
		{description: "both nil", a: nil, b: nil, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, EqualRequestId(testCase.a, testCase.b), testCase.description)
	}
}
