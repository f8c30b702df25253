package fixedwidth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Raw(t *testing.T) {
	f := Raw("code", 2, 6)
	v, err := Decode("xxKSEAyy", f)
	require.NoError(t, err)
	assert.Equal(t, "KSEA", v)
}

func TestDecode_RawShortLine(t *testing.T) {
	f := Raw("tail", 120, 128)
	v, err := Decode("short", f)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestDecode_TrimRight(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"trailing spaces removed", "AB  ", "AB"},
		{"leading spaces preserved", "  AB", "  AB"},
		{"all spaces decode empty", "    ", ""},
		{"interior spaces kept", "A B ", "A B"},
	}
	f := TrimRight("name", 0, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.line, f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestDecode_TrimRightRepadIdempotent(t *testing.T) {
	f := TrimRight("name", 0, 8)
	line := "BOEING  "

	v1, err := Decode(line, f)
	require.NoError(t, err)

	repadded := v1.(string) + strings.Repeat(" ", 8-len(v1.(string)))
	v2, err := Decode(repadded, f)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestDecode_Number(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int64
	}{
		{"leading zeros stripped", "00045", 45},
		{"all zeros decode zero", "00000", 0},
		{"negative sign preserved", "-0003", -3},
		{"plain number", "11901", 11901},
	}
	f := Number("n", 0, 5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.line, f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestDecode_NumberMalformed(t *testing.T) {
	f := Number("elevation", 0, 5)
	for _, line := range []string{"12a45", "     "} {
		_, err := Decode(line, f)
		require.Error(t, err)

		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "elevation", derr.Field)
		assert.Equal(t, line, derr.Raw)
		assert.Equal(t, line, derr.Line)
	}
}

func TestDecode_LatLng(t *testing.T) {
	tests := []struct {
		name string
		line string
		want float64
	}{
		{"north positive two-digit degrees", "N47153000", 47.258333},
		{"south negates", "S47153000", -47.258333},
		{"west negative three-digit degrees", "W122180512", -122.301422},
		{"east positive three-digit degrees", "E122180512", 122.301422},
		{"hundredths contribute", "N00000001", 0.000003},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := LatLng("coord", 0, len(tt.line))
			v, err := Decode(tt.line, f)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-9)
		})
	}
}

func TestDecode_LatLngMissing(t *testing.T) {
	f := LatLng("latitude", 0, 9)
	v, err := Decode("         ", f)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecode_LatLngMalformed(t *testing.T) {
	f := LatLng("latitude", 0, 9)
	for _, line := range []string{"N4715", "N47X53000"} {
		_, err := Decode(line, f)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr, "line %q", line)
		assert.Equal(t, "latitude", derr.Field)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	line := "N47153000 00433 KSEA"
	fields := []Field{
		LatLng("coord", 0, 9),
		Number("elev", 10, 15),
		TrimRight("code", 16, 20),
	}
	for _, f := range fields {
		v1, err1 := Decode(line, f)
		v2, err2 := Decode(line, f)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, v1, v2, "field %s", f.Name)
	}
}
