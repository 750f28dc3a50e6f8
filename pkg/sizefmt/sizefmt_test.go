package sizefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{500, "500 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{2048, "2.00 KB"},
		{12698, "12.40 KB"},
		{1048576, "1.00 MB"},
		{5 * 1048576, "5.00 MB"},
		{1073741824, "1.00 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.bytes), "bytes=%d", tc.bytes)
	}
}
