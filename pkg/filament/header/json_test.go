package header

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestMapMarshalJSON(t *testing.T) {
	m := New()
	require.NoError(t, m.Append(SetCookie, StaticValue("a=1")))
	require.NoError(t, m.Append(SetCookie, StaticValue("b=2")))
	require.NoError(t, m.Append(MustName("Host"), StaticValue("example.com")))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"host":["example.com"],"set-cookie":["a=1","b=2"]}`, string(data))

	empty, err := json.Marshal(New())
	require.NoError(t, err)
	require.Equal(t, `{}`, string(empty))
}

func TestMapUnmarshalJSON(t *testing.T) {
	var m Map
	err := json.Unmarshal([]byte(`{"Content-Type":["text/html"],"Set-Cookie":["a=1","b=2"]}`), &m)
	require.NoError(t, err)

	require.Equal(t, 2, m.Len())
	require.Equal(t, 3, m.ValuesLen())
	require.Equal(t, []string{"a=1", "b=2"}, m.GetAll(SetCookie).Strings())
	v, ok := m.Get(ContentType)
	require.True(t, ok)
	require.Equal(t, "text/html", v.String())
	checkInvariants(t, &m)
}

func TestMapUnmarshalJSONReplaces(t *testing.T) {
	m := New()
	require.NoError(t, m.Append(Host, StaticValue("old.example")))

	require.NoError(t, json.Unmarshal([]byte(`{"accept":["*/*"]}`), m))
	require.False(t, m.Contains(Host))
	require.True(t, m.Contains(Accept))
}

func TestMapUnmarshalJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"Bad name", `{"bad name":["v"]}`, ErrInvalidName},
		{"Bad value", `{"x-ok":["a\nb"]}`, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			require.NoError(t, m.Append(Host, StaticValue("example.com")))

			err := m.UnmarshalJSON([]byte(tt.input))
			require.ErrorIs(t, err, tt.want)
			require.True(t, m.IsEmpty(), "map not cleared after a failed decode")
		})
	}

	m := New()
	require.Error(t, json.Unmarshal([]byte(`{"host":"not-an-array"}`), m))
}

func TestMapJSONRoundTrip(t *testing.T) {
	m := New()
	for _, n := range StandardNames()[:30] {
		require.NoError(t, m.Append(n, StaticValue("first")))
		require.NoError(t, m.Append(n, StaticValue("second")))
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := New()
	require.NoError(t, json.Unmarshal(data, decoded))
	require.True(t, m.Equal(decoded))
}
