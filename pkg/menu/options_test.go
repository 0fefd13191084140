package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetURL(t *testing.T) {
	testCases := []struct {
		name     string
		opts     Options
		expected string
	}{
		{"plain", URL("/about"), "/about"},
		{"map", Map{Href("/about"), PID(3)}, "/about"},
		{"map without url", Map{PID(3)}, ""},
		{"empty map", Map{}, ""},
		{"nil", nil, ""},
		{"positional url is not the url", Map{Flag("url")}, ""},
		{"null url", Map{Null(KeyURL)}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetURL(tc.opts))
		})
	}
}

func TestExtractAttr(t *testing.T) {
	got := ExtractAttr(Map{PID(2), Href("/x"), A("class", "active")})
	assert.Equal(t, Attributes{A("class", "active")}, got)

	got = ExtractAttr(Map{A("id", "a"), Href("/x"), Flag("hidden"), A("class", "b")})
	assert.Equal(t, Attributes{A("id", "a"), Flag("hidden"), A("class", "b")}, got)

	assert.Empty(t, ExtractAttr(Map{PID(1)}))
}

func TestExtractAttrKeepsPositionalReservedNames(t *testing.T) {
	got := ExtractAttr(Map{Flag("pid"), Flag("url"), Href("/x")})
	assert.Equal(t, Attributes{Flag("pid"), Flag("url")}, got)
	assert.Equal(t, ` pid url`, ParseAttr(got))
}

func TestParentOf(t *testing.T) {
	assert.Equal(t, 0, parentOf(URL("/x")))
	assert.Equal(t, 0, parentOf(Map{}))
	assert.Equal(t, 4, parentOf(Map{PID(4)}))
	assert.Equal(t, 4, parentOf(Map{A(KeyParent, " 4 ")}))
	assert.Equal(t, 0, parentOf(Map{A(KeyParent, "four")}))
	assert.Equal(t, 0, parentOf(Map{Null(KeyParent)}))
	assert.Equal(t, 0, parentOf(Map{Flag(KeyParent)}))
	assert.Equal(t, 5, parentOf(Map{Flag(KeyParent), PID(5)}))
}
