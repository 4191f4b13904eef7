package batch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	items := Import("text,filename\nhttps://a.com,site-a\ntel:+1,phone")

	require.Len(t, items, 2)
	assert.Equal(t, "https://a.com", items[0].Payload)
	assert.Equal(t, "site-a", items[0].NameHint)
	assert.Equal(t, "tel:+1", items[1].Payload)
	assert.Equal(t, "phone", items[1].NameHint)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.NotEqual(t, uuid.Nil, items[0].ID)
}

func TestImport_NoHeader(t *testing.T) {
	items := Import("https://a.com,site-a\nhttps://b.com,site-b")
	require.Len(t, items, 2)
	assert.Equal(t, "https://a.com", items[0].Payload)
}

func TestImport_HeaderCaseInsensitive(t *testing.T) {
	items := Import("URL,Name\nhttps://a.com,site-a")
	require.Len(t, items, 1)
}

func TestImport_Quotes(t *testing.T) {
	items := Import(`"hello world","my file"`)
	require.Len(t, items, 1)
	assert.Equal(t, "hello world", items[0].Payload)
	assert.Equal(t, "my file", items[0].NameHint)
}

func TestImport_SkipsBlankLines(t *testing.T) {
	items := Import("https://a.com,a\n\n\nhttps://b.com,b\n")
	require.Len(t, items, 2)
}

func TestImport_MissingHint(t *testing.T) {
	items := Import("https://a.com")
	require.Len(t, items, 1)
	assert.Empty(t, items[0].NameHint)
}

func TestFilter(t *testing.T) {
	items := []Item{
		NewItem("https://a.com", "a"),
		NewItem("   ", "blank"),
		NewItem("", "empty"),
		NewItem("https://b.com", "b"),
	}

	got := Filter(items)
	require.Len(t, got, 2)
	assert.Equal(t, "https://a.com", got[0].Payload)
	assert.Equal(t, "https://b.com", got[1].Payload)
	// The source collection keeps every row.
	assert.Len(t, items, 4)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "site-a", FileName(" site-a "))
	assert.Equal(t, "qrcode", FileName(""))
	assert.Equal(t, "qrcode", FileName("   "))
}
