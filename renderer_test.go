package rawtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer_Render(t *testing.T) {
	c := &Collector{}
	data := &EventData{
		DataType: "fs:stat",
		Attributes: []Attribute{
			{Name: "size", Value: ScalarValue(10)},
			{Name: "name_attr", Value: StringValue("x")},
		},
	}

	m, err := c.Collect(testRecord(), data, nil, nil)
	require.NoError(t, err)

	got := TextRenderer{}.Render(m)

	want := strings.Join([]string{
		strings.Repeat("+-", 40),
		"[Timestamp]:",
		"  2024-01-01T00:00:00.000000+00:00",
		"",
		"[Reserved attributes]:",
		"",
		"[Additional attributes]:",
		"  {name_attr} x",
		"  {size} 10",
		"",
	}, "\n") + "\n"
	require.Equal(t, want, got)

	// name_attr sorts before size regardless of insertion order.
	require.Less(t, strings.Index(got, "{name_attr}"), strings.Index(got, "{size}"))
}

func TestTextRenderer_Render_Sections(t *testing.T) {
	c := &Collector{}
	data := &EventData{
		DataType: "fs:stat",
		Attributes: []Attribute{
			{Name: "zebra", Value: StringValue("z")},
			{Name: "filename", Value: StringValue("/tmp/f")},
			{Name: "data_type", Value: StringValue("fs:stat")},
			{Name: "alpha", Value: StringValue("a")},
		},
	}

	m, err := c.Collect(testRecord(), data, nil, nil)
	require.NoError(t, err)

	got := TextRenderer{}.Render(m)

	want := strings.Join([]string{
		strings.Repeat("+-", 40),
		"[Timestamp]:",
		"  2024-01-01T00:00:00.000000+00:00",
		"",
		"[Reserved attributes]:",
		"  {data_type} fs:stat",
		"  {filename} /tmp/f",
		"",
		"[Additional attributes]:",
		"  {alpha} a",
		"  {zebra} z",
		"",
	}, "\n") + "\n"
	require.Equal(t, want, got)
}

func TestTextRenderer_Render_PathSpec(t *testing.T) {
	c := &Collector{}
	ps := FSPathSpec{
		Type:     "TSK",
		Location: "/var/log/messages",
		Parent:   FSPathSpec{Type: "OS", Location: "/images/disk.dd"},
	}
	data := &EventData{
		DataType: "fs:stat",
		Attributes: []Attribute{
			{Name: "path_spec", Value: PathSpecValue(ps)},
		},
	}

	m, err := c.Collect(testRecord(), data, nil, nil)
	require.NoError(t, err)

	got := TextRenderer{}.Render(m)

	want := strings.Join([]string{
		strings.Repeat("+-", 40),
		"[Timestamp]:",
		"  2024-01-01T00:00:00.000000+00:00",
		"",
		"[Pathspec]:",
		"  type: OS, location: /images/disk.dd",
		"  type: TSK, location: /var/log/messages",
		"",
		"[Reserved attributes]:",
		"",
		"[Additional attributes]:",
		"",
	}, "\n") + "\n"
	require.Equal(t, want, got)
}

func TestTextRenderer_Render_Tag(t *testing.T) {
	c := &Collector{}
	tag := &EventTag{Labels: []string{"a", "b"}}

	m, err := c.Collect(testRecord(), &EventData{DataType: "fs:stat"}, nil, tag)
	require.NoError(t, err)

	got := TextRenderer{}.Render(m)
	assert.Contains(t, got, "\n[Tag]:\n  {labels} ['a', 'b']\n")
	assert.True(t, strings.HasSuffix(got, "['a', 'b']\n\n"))
}

func TestTextRenderer_Render_Deterministic(t *testing.T) {
	data := &EventData{
		DataType: "fs:stat",
		Attributes: []Attribute{
			{Name: "size", Value: ScalarValue(10)},
			{Name: "names", Value: SequenceValue(StringValue("a"), StringValue("b"))},
			{Name: "filename", Value: StringValue("/tmp/f")},
		},
	}
	tag := &EventTag{Labels: []string{"applesauce"}}

	var first string
	for i := 0; i < 25; i++ {
		c := &Collector{Resolver: DisplayFieldResolver{}}
		m, err := c.Collect(testRecord(), data, nil, tag)
		require.NoError(t, err)
		got := TextRenderer{}.Render(m)
		if i == 0 {
			first = got
			continue
		}
		require.Equal(t, first, got)
	}
}

func TestTextRenderer_Render_MissingTimestampPanics(t *testing.T) {
	m := newFieldMapping()
	m.Set(identifierKey, "1/12")
	require.Panics(t, func() {
		TextRenderer{}.Render(m)
	})
}

func TestSeparatorLine(t *testing.T) {
	require.Len(t, separatorLine, 80)
	require.Equal(t, "+-", separatorLine[:2])
}
