package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimecode(t *testing.T) {
	tests := map[string]struct {
		value    string
		expected int
		wantErr  bool
	}{
		"plain-seconds":         {value: "90", expected: 90},
		"zero":                  {value: "0", expected: 0},
		"negative-seconds":      {value: "-5", expected: -5},
		"seconds-suffix":        {value: "70s", expected: 70},
		"minutes-seconds":       {value: "1m35s", expected: 95},
		"hours-minutes-seconds": {value: "1h2m3s", expected: 3723},
		"minutes-only":          {value: "2m", expected: 120},
		"hours-seconds":         {value: "1h30s", expected: 3630},
		"empty":                 {value: "", wantErr: true},
		"garbage":               {value: "abc", wantErr: true},
		"unit-without-number":   {value: "ms", wantErr: true},
		"wrong-unit-order":      {value: "3s1m", wantErr: true},
		"decimal":               {value: "1.5", wantErr: true},
		"overflow-plain":        {value: "99999999999999999999", wantErr: true},
		"overflow-hours":        {value: "999999h", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTimecode(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
