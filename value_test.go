package rawtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_String(t *testing.T) {
	tests := map[string]struct {
		value Value
		want  string
	}{
		"string":  {StringValue("x"), "x"},
		"int":     {ScalarValue(10), "10"},
		"float":   {ScalarValue(1.5), "1.5"},
		"bytes":   {BytesValue([]byte("raw")), "raw"},
		"strings": {SequenceValue(StringValue("a"), StringValue("b")), "['a', 'b']"},
		"ints":    {SequenceValue(ScalarValue(1), ScalarValue(2)), "[1, 2]"},
		"empty":   {SequenceValue(), "[]"},
		"pathspec": {
			PathSpecValue(FSPathSpec{Type: "OS", Location: "/tmp/f"}),
			"type: OS, location: /tmp/f",
		},
		"timestamp":  {TimestampValue(), ""},
		"identifier": {IdentifierValue(), ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.String())
		})
	}
}

func TestValue_TimestampLike(t *testing.T) {
	assert.True(t, TimestampValue().timestampLike())
	assert.True(t, SequenceValue(TimestampValue()).timestampLike())
	assert.False(t, SequenceValue().timestampLike())
	assert.False(t, SequenceValue(StringValue("a"), TimestampValue()).timestampLike())
	assert.False(t, StringValue("a").timestampLike())
}

func TestDecodeBytes(t *testing.T) {
	// Each invalid byte becomes one replacement character.
	assert.Equal(t, "��a", decodeBytes([]byte{0xff, 0xfe, 'a'}))
	assert.Equal(t, "abc", decodeBytes([]byte("abc")))
	assert.Equal(t, "", decodeBytes(nil))
}

func TestCopyToISO8601(t *testing.T) {
	tests := map[string]struct {
		micro int64
		want  string
	}{
		"epoch":          {0, "1970-01-01T00:00:00.000000+00:00"},
		"midnight-2024":  {midnight2024, "2024-01-01T00:00:00.000000+00:00"},
		"sub-second":     {midnight2024 + 123456, "2024-01-01T00:00:00.123456+00:00"},
		"before-epoch":   {-1000000, "1969-12-31T23:59:59.000000+00:00"},
		"not-round-unit": {1549064458876954, "2019-02-01T23:40:58.876954+00:00"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, copyToISO8601(tc.micro))
		})
	}
}

func TestIdentifiers(t *testing.T) {
	assert.Equal(t, "3/209", StoreIdentifier{Store: 3, Index: 209}.String())

	id, err := NewUUIDIdentifier()
	assert.NoError(t, err)
	assert.NotEmpty(t, id.String())
}
