// Package fixedwidth parses fixed-width record files through a schema tree.
//
// A schema is a tree of record classes. Each class owns a field table (its
// parent's table merged with its own fields), an optional identity key, an
// optional discriminator field selecting among its children, and the mutable
// per-run state of ingestion: an instance store keyed by identity and
// diagnostic counters for unknown discriminator values and dropped
// continuation records. The Builder produces the tree; Tree.Ingest drives one
// file through it.
package fixedwidth

import (
	"strconv"
	"strings"
)

// DecodeKind selects how a field's byte slice is turned into a value.
type DecodeKind int

const (
	// KindRaw returns the slice unchanged.
	KindRaw DecodeKind = iota
	// KindTrimRight removes trailing spaces; leading spaces are preserved.
	KindTrimRight
	// KindNumber strips leading zeros and parses a signed integer.
	KindNumber
	// KindLatLng parses a coordinate in degrees/minutes/seconds/hundredths.
	KindLatLng
)

// Field addresses one fixed-width column: a half-open byte range [Begin, End)
// within the source line, plus the decode rule applied to it. Fields are
// defined at schema-build time and never mutated.
type Field struct {
	Name  string
	Begin int
	End   int
	Kind  DecodeKind
}

// Raw declares a field decoded as the raw slice.
func Raw(name string, begin, end int) Field {
	return Field{Name: name, Begin: begin, End: end, Kind: KindRaw}
}

// TrimRight declares a field with trailing spaces removed.
func TrimRight(name string, begin, end int) Field {
	return Field{Name: name, Begin: begin, End: end, Kind: KindTrimRight}
}

// Number declares a zero-padded signed integer field.
func Number(name string, begin, end int) Field {
	return Field{Name: name, Begin: begin, End: end, Kind: KindNumber}
}

// LatLng declares a latitude or longitude field in DMS notation.
func LatLng(name string, begin, end int) Field {
	return Field{Name: name, Begin: begin, End: end, Kind: KindLatLng}
}

// slice returns the field's byte range of line, clamped to the line length.
// Short lines yield a short (possibly empty) slice rather than an error,
// matching how fields beyond a truncated record read as blank.
func (f Field) slice(line string) string {
	begin, end := f.Begin, f.End
	if begin > len(line) {
		begin = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	return line[begin:end]
}

// Decode extracts the field's value from line. The result is nil, a string,
// an int64, or a float64 depending on the decode kind. Decode is pure: the
// same line and field always produce the same value.
//
// Numeric and coordinate fields that contain malformed text return a
// *DecodeError carrying the field name, the raw slice, and the whole line.
func Decode(line string, f Field) (any, error) {
	raw := f.slice(line)

	switch f.Kind {
	case KindRaw:
		return raw, nil
	case KindTrimRight:
		return strings.TrimRight(raw, " "), nil
	case KindNumber:
		return decodeNumber(line, f, raw)
	case KindLatLng:
		return decodeLatLng(line, f, raw)
	default:
		return nil, &DecodeError{Field: f.Name, Raw: raw, Line: line, Reason: "unknown decode kind"}
	}
}

// decodeNumber parses a zero-padded integer such as "00045" or "-0003".
// Both signs decode to int64; an all-zero slice decodes to 0.
func decodeNumber(line string, f Field, raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, &DecodeError{Field: f.Name, Raw: raw, Line: line, Reason: "empty numeric field"}
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return int64(0), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &DecodeError{Field: f.Name, Raw: raw, Line: line, Reason: "malformed number"}
	}
	if neg {
		n = -n
	}
	return n, nil
}

// decodeLatLng converts a DMS coordinate such as "N47153000" or "W122180512"
// to decimal degrees with six fixed decimal digits. A leading space means the
// record carries no coordinate and decodes to nil.
//
// The first character gives the sign (N/E non-negative, anything else
// negative) and the degree width (N/S two digits, E/W three). Minutes,
// seconds, and hundredths of seconds follow as two digits each.
func decodeLatLng(line string, f Field, raw string) (any, error) {
	if raw == "" || raw[0] == ' ' {
		return nil, nil
	}

	sign := int64(-1)
	if raw[0] == 'N' || raw[0] == 'E' {
		sign = 1
	}
	degWidth := 3
	if raw[0] == 'N' || raw[0] == 'S' {
		degWidth = 2
	}
	if len(raw) < 1+degWidth+6 {
		return nil, &DecodeError{Field: f.Name, Raw: raw, Line: line, Reason: "truncated coordinate"}
	}

	parts := [4]int64{}
	offsets := [5]int{1, 1 + degWidth, 3 + degWidth, 5 + degWidth, 7 + degWidth}
	for i := 0; i < 4; i++ {
		n, err := strconv.ParseInt(raw[offsets[i]:offsets[i+1]], 10, 64)
		if err != nil || n < 0 {
			return nil, &DecodeError{Field: f.Name, Raw: raw, Line: line, Reason: "malformed coordinate"}
		}
		parts[i] = n
	}

	// Total in hundredths of arcseconds; one degree is 360000 of them.
	// Scaling to microdegrees multiplies by 25/9, whose remainder can never
	// land exactly on half, so nearest rounding meets the fixed six-decimal
	// contract.
	total := ((parts[0]*60+parts[1])*60+parts[2])*100 + parts[3]
	micro := total * 25 / 9
	if total*25%9 >= 5 {
		micro++
	}
	return float64(sign*micro) / 1e6, nil
}
