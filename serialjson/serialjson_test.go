package serialjson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/strand"
)

func TestWriteReadRoundTrip(t *testing.T) {
	values := []string{"alpha", "", `quotes " and \ slashes`, "héllo 世界"}

	w := NewWriter()
	for _, v := range values {
		require.Equal(t, strand.SerialOK, strand.FromString(v).MarshalTo(w))
	}
	require.Equal(t, len(values), w.Len())

	r, err := NewReader(w.Bytes())
	require.NoError(t, err)

	s := strand.New()
	for i, want := range values {
		status := s.UnmarshalFrom(r)
		if i == len(values)-1 {
			require.Equal(t, strand.SerialDone, status)
		} else {
			require.Equal(t, strand.SerialOK, status)
		}
		require.Equal(t, want, s.String())
	}

	require.Equal(t, strand.SerialFail, s.UnmarshalFrom(r), "read past end must fail")
}

func TestReaderRejectsBadDocuments(t *testing.T) {
	_, err := NewReader([]byte(`{"not": "an array"}`))
	require.Error(t, err)

	_, err = NewReader([]byte(`[1, 2,`))
	require.Error(t, err)
}

func TestReaderNonStringElement(t *testing.T) {
	r, err := NewReader([]byte(`["ok", 42]`))
	require.NoError(t, err)

	s := strand.New()
	require.Equal(t, strand.SerialOK, s.UnmarshalFrom(r))
	require.Equal(t, "ok", s.String())
	require.Equal(t, strand.SerialFail, s.UnmarshalFrom(r))
}

func TestEmptyDocument(t *testing.T) {
	r, err := NewReader(NewWriter().Bytes())
	require.NoError(t, err)

	s := strand.New()
	require.Equal(t, strand.SerialFail, s.UnmarshalFrom(r))
}
