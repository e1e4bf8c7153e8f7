package argmap

import (
	"math"
	"strconv"
)

// nullTokens and boolTokens form the scalar resolution table shared by
// CLI inference and the YAML codec. The table deliberately excludes the
// YAML 1.1 yes/no/on/off boolean forms: those words are common literal
// string values (stage names, switches in domain vocabulary) and
// silent coercion corrupts configuration.
var nullTokens = map[string]struct{}{
	"":     {},
	"~":    {},
	"null": {},
	"Null": {},
	"NULL": {},
	"None": {},
}

var boolTokens = map[string]bool{
	"true":  true,
	"True":  true,
	"TRUE":  true,
	"false": false,
	"False": false,
	"FALSE": false,
}

// Infer converts a raw string token into the most specific plausible
// value, trying integer, then float (narrowed back to int64 when the
// value has no fractional part and fits), then null, then boolean,
// falling back to the unmodified string.
func Infer(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f == math.Trunc(f) && !math.IsInf(f, 0) &&
			f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		return f
	}
	if _, ok := nullTokens[raw]; ok {
		return nil
	}
	if b, ok := boolTokens[raw]; ok {
		return b
	}
	return raw
}
