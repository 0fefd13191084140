package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMenu = `
items:
  - title: Home
    url: /
    attributes:
      class: nav
      disabled: ~
      0: checked
    link_attributes:
      rel: home
  - title: Products
    url: /products
    items:
      - title: Hardware
        url: /products/hw
      - title: Software
        url: /products/sw
        attributes: [hidden]
        items:
          - title: Beta
            url: /products/sw/beta
  - title: About
    url: /about
`

func TestDecode(t *testing.T) {
	b, err := Decode(strings.NewReader(testMenu))
	require.NoError(t, err)
	require.Equal(t, 6, b.Len())

	home, ok := b.Get(1)
	require.True(t, ok)
	assert.Equal(t, Attributes{A("class", "nav"), Null("disabled"), Flag("checked")}, home.Attributes())
	assert.Equal(t, Attributes{A("rel", "home")}, home.Link().Attributes)

	parents := map[string]int{}
	for _, it := range b.Items() {
		parents[it.Link().Text] = it.ParentID()
	}
	assert.Equal(t, map[string]int{
		"Home":     0,
		"Products": 0,
		"Hardware": 2,
		"Software": 2,
		"Beta":     4,
		"About":    0,
	}, parents)

	sw, _ := b.Get(4)
	assert.Equal(t, Attributes{Flag("hidden")}, sw.Attributes())
}

func TestDecodeRendersLikeHandBuilt(t *testing.T) {
	src := `
items:
  - title: A
    url: /a
    items:
      - title: B
        url: /b
`
	loaded, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	b := New()
	a := b.AddNewItem("A", URL("/a"))
	b.AddNewItem("B", Map{Href("/b"), PID(a.ID())})

	want, err := b.AsUl(nil)
	require.NoError(t, err)
	got, err := loaded.AsUl(nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeDropsReservedAttributes(t *testing.T) {
	src := "items:\n  - title: A\n    url: /a\n    attributes: {pid: 7, url: /evil, class: x}\n"

	b, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	it, ok := b.Get(1)
	require.True(t, ok)
	assert.Equal(t, 0, it.ParentID())
	assert.Equal(t, "/a", it.Link().URL)
	assert.Equal(t, Attributes{A("class", "x")}, it.Attributes())

	out, err := b.Render(UL, 0)
	require.NoError(t, err)
	assert.Equal(t, "\n<li class=\"x\"><a href=\"/a\">A</a></li>", out)
}

func TestDecodeEmpty(t *testing.T) {
	b, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"malformed", "items: [\n"},
		{"missing title", "items:\n  - url: /x\n"},
		{"nested missing title", "items:\n  - title: a\n    items:\n      - url: /y\n"},
		{"nested attribute", "items:\n  - title: a\n    attributes:\n      class: [x]\n"},
		{"scalar attributes", "items:\n  - title: a\n    attributes: nope\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src))
			assert.Error(t, err)
		})
	}

	_, err := Decode(strings.NewReader("items:\n  - url: /x\n"))
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "items[0]")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testMenu), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
