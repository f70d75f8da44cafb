package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hel", TruncateString("hello", 3))
	assert.Equal(t, "hi", TruncateString("hi", 3))
	assert.Equal(t, "你", TruncateString("你好", 3), "wide runes never split")
	assert.Equal(t, "", TruncateString("hello", 0))
}

func TestFitString(t *testing.T) {
	assert.Equal(t, "ab    ", FitString("ab", 6))
	assert.Equal(t, "abcdef", FitString("abcdefgh", 6))
	assert.Equal(t, "你好  ", FitString("你好", 6))
	assert.Equal(t, "你 ", FitString("你好", 3))
	assert.Equal(t, "", FitString("x", -1))
}

func TestCenterString(t *testing.T) {
	assert.Equal(t, "  7   ", CenterString("7", 6))
	assert.Equal(t, "  12  ", CenterString("12", 6))
	assert.Equal(t, "abc", CenterString("abcdef", 3))
}

func TestRightAlign(t *testing.T) {
	assert.Equal(t, " 42", RightAlign("42", 3))
	assert.Equal(t, "123", RightAlign("1234", 3))
}
