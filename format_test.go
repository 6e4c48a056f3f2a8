package scriptlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRecord() record {
	return record{
		level:   LevelError,
		message: "disk full",
		when:    time.Date(2025, 3, 9, 14, 30, 5, 0, time.UTC),
		tzLabel: tzLabelUTC,
		script:  "deploy.sh",
	}
}

func TestFormatRecordTokens(t *testing.T) {
	rec := testRecord()
	cases := []struct {
		name     string
		template string
		want     string
	}{
		{"level and message", "%l: %m", "ERROR: disk full"},
		{"all tokens", "%d %z %l %s %m", "2025-03-09 14:30:05 UTC ERROR deploy.sh disk full"},
		{"repeated token", "%m %m", "disk full disk full"},
		{"reordered", "%m [%l]", "disk full [ERROR]"},
		{"no tokens", "plain text", "plain text"},
		{"empty template", "", ""},
		{"unknown token literal", "%q %m", "%q disk full"},
		{"double percent literal", "%% %m", "%% disk full"},
		{"trailing percent", "100%", "100%"},
		{"only percent", "%", "%"},
		{"timezone label", "%z", "UTC"},
		{"script name", "%s", "deploy.sh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatRecord(tc.template, rec))
		})
	}
}

func TestFormatRecordLocalLabel(t *testing.T) {
	rec := testRecord()
	rec.tzLabel = tzLabelLocal
	assert.Equal(t, "LOCAL", formatRecord("%z", rec))
}

func TestFormatRecordNoRescan(t *testing.T) {
	// Tokens inside the substituted message must stay literal.
	rec := testRecord()
	rec.message = "payload with %l and %m inside"
	assert.Equal(t, "payload with %l and %m inside", formatRecord("%m", rec))
}

func TestFormatRecordTimestampShape(t *testing.T) {
	rec := testRecord()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, formatRecord("%d", rec))
}
