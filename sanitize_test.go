package scriptlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeNewlineForgery(t *testing.T) {
	// Each LF, CR, and HT becomes exactly one space so a crafted message
	// cannot fake additional log lines.
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lf", "user\nFAKE ENTRY", "user FAKE ENTRY"},
		{"cr", "user\rFAKE", "user FAKE"},
		{"crlf", "a\r\nb", "a  b"},
		{"tab", "a\tb", "a b"},
		{"order preserved", "1\n2\r3\t4", "1 2 3 4"},
		{"leading and trailing", "\na\n", " a "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeMessage(tc.in, false, false))
		})
	}
}

func TestSanitizeNewlinesAllowed(t *testing.T) {
	in := "line one\nline two\r\tend"
	assert.Equal(t, in, sanitizeMessage(in, true, false))
}

func TestSanitizeEscapeSequences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"csi color", "a\x1b[31mred\x1b[0mb", "aredb"},
		{"csi no params", "a\x1b[mb", "ab"},
		{"csi dec private", "a\x1b[?25lb", "ab"},
		{"csi multi param", "a\x1b[1;31;47mb", "ab"},
		{"csi intermediate", "a\x1b[0 qb", "ab"},
		{"osc bel", "a\x1b]0;title\x07b", "ab"},
		{"osc st", "a\x1b]0;title\x1b\\b", "ab"},
		{"osc nested escape", "a\x1b]0;t\x1b[1mt\x07b", "ab"},
		{"osc unterminated", "a\x1b]0;runs off the end", "a"},
		{"dcs st", "a\x1bPq payload\x1b\\b", "ab"},
		{"two byte", "a\x1b7b\x1b8c", "abc"},
		{"three byte charset", "a\x1b(Bb", "ab"},
		{"three byte dec", "a\x1b#8b", "ab"},
		{"bare esc at end", "abc\x1b", "abc"},
		{"csi truncated", "abc\x1b[31", "abc"},
		{"lone bel", "a\x07b", "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeMessage(tc.in, false, false))
		})
	}
}

func TestSanitizeEscapesAllowed(t *testing.T) {
	in := "a\x1b[31mred\x1b[0m\x07b"
	assert.Equal(t, in, sanitizeMessage(in, false, true))
}

func TestSanitizeControlBytesAlwaysStripped(t *testing.T) {
	// NUL, the other C0 controls, and DEL never survive, no matter how the
	// relaxation switches are set.
	in := "a\x00b\x01c\x7fd"
	for _, newlines := range []bool{false, true} {
		for _, ansi := range []bool{false, true} {
			assert.Equal(t, "abcd", sanitizeMessage(in, newlines, ansi),
				"newlines=%v ansi=%v", newlines, ansi)
		}
	}
}

func TestSanitizeSwitchesIndependent(t *testing.T) {
	// The newline switch must not change escape handling and vice versa.
	in := "a\nb\x1b[31mc"
	cases := []struct {
		newlines bool
		ansi     bool
		want     string
	}{
		{false, false, "a bc"},
		{true, false, "a\nbc"},
		{false, true, "a b\x1b[31mc"},
		{true, true, "a\nb\x1b[31mc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeMessage(in, tc.newlines, tc.ansi),
			"newlines=%v ansi=%v", tc.newlines, tc.ansi)
	}
}

func TestSanitizeUTF8Preserved(t *testing.T) {
	in := "naïve café 日本語"
	assert.Equal(t, in, sanitizeMessage(in, false, false))
}

func TestSanitizeEmpty(t *testing.T) {
	assert.Equal(t, "", sanitizeMessage("", false, false))
}

func TestTruncateBytes(t *testing.T) {
	t.Run("unlimited", func(t *testing.T) {
		long := strings.Repeat("x", 10000)
		assert.Equal(t, long, truncateBytes(long, 0))
	})
	t.Run("under limit", func(t *testing.T) {
		assert.Equal(t, "short", truncateBytes("short", 100))
	})
	t.Run("exact limit", func(t *testing.T) {
		assert.Equal(t, "abcde", truncateBytes("abcde", 5))
	})
	t.Run("byte cut", func(t *testing.T) {
		assert.Equal(t, "abc", truncateBytes("abcdef", 3))
	})
	t.Run("rune boundary", func(t *testing.T) {
		// "é" is two bytes; cutting inside it must drop the whole rune.
		got := truncateBytes("héllo", 2)
		assert.Equal(t, "h", got)
		require.True(t, len(got) <= 2)
	})
	t.Run("rune boundary kept", func(t *testing.T) {
		assert.Equal(t, "hé", truncateBytes("héllo", 3))
	})
}
