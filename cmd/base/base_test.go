package base

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionStatement(t *testing.T) {
	lines := VersionStatement()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Backend "+Version()+" "))
	assert.Contains(t, lines[0], runtime.GOOS+"/"+runtime.GOARCH)
	assert.Equal(t, "0.1.0", Version())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Backend "+Version())
	assert.Contains(t, out.String(), intro)
}

func TestRootRejectsArgs(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"unexpected"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}
