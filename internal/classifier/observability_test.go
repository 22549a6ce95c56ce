//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import (
	"testing"
)

func TestTruncateWords(t *testing.T) {
	t.Helper()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "short query under limit",
			input: "my phone was stolen",
			limit: queryExcerptWordLimit,
			want:  "my phone was stolen",
		},
		{
			name:  "exact limit",
			input: "one two three four five six seven eight nine ten",
			limit: queryExcerptWordLimit,
			want:  "one two three four five six seven eight nine ten",
		},
		{
			name:  "over limit truncated with ellipsis",
			input: "one two three four five six seven eight nine ten eleven twelve",
			limit: queryExcerptWordLimit,
			want:  "one two three four five six seven eight nine ten...",
		},
		{
			name:  "empty string",
			input: "",
			limit: queryExcerptWordLimit,
			want:  "",
		},
		{
			name:  "single word",
			input: "complaint",
			limit: queryExcerptWordLimit,
			want:  "complaint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Helper()

			got := truncateWords(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("truncateWords(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}
