package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/urlcoder"
	"github.com/dedene/urlcoder/internal/config"
	"github.com/dedene/urlcoder/internal/outfmt"
	"github.com/dedene/urlcoder/querystring"
)

func TestEffectiveConfig_Defaults(t *testing.T) {
	got, err := effectiveConfig(testCtx(t, outfmt.Mode{}, nil), &RootFlags{})
	require.NoError(t, err)
	assert.Equal(t, urlcoder.DefaultConfig(), got)
}

func TestEffectiveConfig_Cascade(t *testing.T) {
	chars := []string{"#"}
	fileCfg := &config.Config{
		EncodingStandard: "legacy",
		SpaceEncoding:    "plus",
		ReservedChars:    &chars,
	}

	flags := PolicyFlags{
		Space:        "percent20",
		QuestionMark: boolPtr(false),
		KeyPattern:   "^[a-z]+$",
	}

	opts, err := flags.options()
	require.NoError(t, err)

	got, err := effectiveConfig(testCtx(t, outfmt.Mode{}, fileCfg), &RootFlags{Verbose: true}, opts...)
	require.NoError(t, err)

	assert.Equal(t, querystring.Legacy, got.Standard, "from config file")
	assert.Equal(t, querystring.Percent20, got.Space, "flag beats config file")
	assert.False(t, got.AutoQuestionMark)
	assert.Equal(t, []string{"#"}, got.ReservedChars)
	assert.Equal(t, "^[a-z]+$", got.ParamKeyPattern)
	assert.Equal(t, urlcoder.DefaultURLPattern, got.URLPattern)
	assert.True(t, got.Debug, "--verbose enables debug")
}

func TestPolicyFlags_Reserved(t *testing.T) {
	flags := PolicyFlags{Reserved: strPtr(" & , # ")}

	opts, err := flags.options()
	require.NoError(t, err)

	got := urlcoder.DefaultConfig().With(opts...)
	assert.Equal(t, []string{"&", "#"}, got.ReservedChars)
}

func TestPolicyFlags_Empty(t *testing.T) {
	opts, err := (&PolicyFlags{}).options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}
