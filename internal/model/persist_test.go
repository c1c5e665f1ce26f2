package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeSplitRoundTrip(t *testing.T) {
	values := []string{"", "plain", "a|b", `back\slash`, "@at", "multi\nline\r\n", `\|@`}
	for _, v := range values {
		fields, err := SplitFields(EscapeField(v))
		require.NoError(t, err, v)
		assert.Equal(t, []string{v}, fields, v)
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "three fields", line: "K1|5|widget", want: []string{"K1", "5", "widget"}},
		{name: "escaped separator", line: `K\|1|5|a\|b`, want: []string{"K|1", "5", "a|b"}},
		{name: "empty description", line: "K1|5|", want: []string{"K1", "5", ""}},
		{name: "dangling escape", line: `K1|5|oops\`, wantErr: true},
		{name: "unknown escape", line: `K1|5|\t`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitFields(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadEscape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnescapeField(t *testing.T) {
	got, err := UnescapeField(`Bolts\|Nuts`)
	require.NoError(t, err)
	assert.Equal(t, "Bolts|Nuts", got)

	_, err = UnescapeField("Bolts|Nuts")
	assert.Error(t, err)
}
