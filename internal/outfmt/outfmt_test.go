package outfmt_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/urlcoder/internal/outfmt"
)

func TestWithMode_IsJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, outfmt.Mode{JSON: true})
	assert.True(t, outfmt.IsJSON(ctx))
	assert.True(t, outfmt.IsStructured(ctx))
}

func TestIsJSON_BareContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, outfmt.IsJSON(ctx))
	assert.False(t, outfmt.IsYAML(ctx))
	assert.False(t, outfmt.IsStructured(ctx))
}

func TestWithMode_YAML(t *testing.T) {
	ctx := outfmt.WithMode(context.Background(), outfmt.Mode{YAML: true})
	assert.False(t, outfmt.IsJSON(ctx))
	assert.True(t, outfmt.IsYAML(ctx))
	assert.True(t, outfmt.IsStructured(ctx))
}

func TestWriteJSON_PrettyPrinted(t *testing.T) {
	var buf bytes.Buffer
	err := outfmt.WriteJSON(&buf, map[string]string{"hello": "world"})
	require.NoError(t, err)

	want := "{\n  \"hello\": \"world\"\n}\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	err := outfmt.WriteJSON(&buf, map[string]string{
		"url": "https://example.com?a=1&b=2",
		"tag": "<b>bold</b>",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "&")
	assert.NotContains(t, out, "\\u0026")
	assert.Contains(t, out, "<b>bold</b>")
	assert.NotContains(t, out, "\\u003c")
	assert.NotContains(t, out, "\\u003e")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	err := outfmt.WriteYAML(&buf, map[string]string{"hello": "world"})
	require.NoError(t, err)
	assert.Equal(t, "hello: world\n", buf.String())
}

func TestWrite_PicksMode(t *testing.T) {
	v := map[string]string{"hello": "world"}

	var yamlBuf bytes.Buffer
	yamlCtx := outfmt.WithMode(context.Background(), outfmt.Mode{YAML: true})
	require.NoError(t, outfmt.Write(yamlCtx, &yamlBuf, v))
	assert.Equal(t, "hello: world\n", yamlBuf.String())

	var jsonBuf bytes.Buffer
	jsonCtx := outfmt.WithMode(context.Background(), outfmt.Mode{JSON: true, YAML: true})
	require.NoError(t, outfmt.Write(jsonCtx, &jsonBuf, v))
	assert.Contains(t, jsonBuf.String(), `"hello": "world"`)
}
