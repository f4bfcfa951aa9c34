package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailNormalizesValue(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{raw: "test@test.test", expected: Email("test@test.test")},
		{raw: "TEST@Test.Test", expected: Email("test@test.test")},
		{raw: "  test@test.test ", expected: Email("test@test.test")},
	}
	for _, testcase := range cases {
		assert.Equal(t, testcase.expected, NewEmail(testcase.raw))
	}
}

func TestOptionalString(t *testing.T) {
	absent := NewOptional("test", false)
	present := NewOptional("test", true)
	assert.Equal(t, "[-]", absent.String())
	assert.Equal(t, "[test]", present.String())
}
