package validation

import "reflect"

// Tolerances for floating point grading. Fixed engine-wide; problems can
// widen the relative part via their FloatTolerance metadata.
const (
	defaultFloatRelTolerance = 1e-6
	floatAbsTolerance        = 1e-9
)

// CompareOptions selects the grading rules for one problem
type CompareOptions struct {
	// Unordered grades sequences by multiset equality instead of order.
	Unordered bool
	// FloatTolerance overrides the default relative tolerance when positive.
	FloatTolerance float64
}

// Equivalent decides whether an actual value is equivalent to an expected
// value for grading purposes. Total and pure: incomparable shapes are simply
// unequal, never a panic.
func Equivalent(actual, expected interface{}, opts CompareOptions) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	if af, aInt, aok := asNumber(actual); aok {
		ef, eInt, eok := asNumber(expected)
		if !eok {
			return false
		}
		if aInt && eInt {
			return af == ef
		}
		return floatsEqual(af, ef, opts)
	}

	if as, ok := asSequence(actual); ok {
		es, ok := asSequence(expected)
		if !ok {
			return false
		}
		if opts.Unordered {
			return multisetEqual(as, es, opts)
		}
		return orderedEqual(as, es, opts)
	}

	if am, ok := asMapping(actual); ok {
		em, ok := asMapping(expected)
		if !ok || len(am) != len(em) {
			return false
		}
		for k, ev := range em {
			av, present := am[k]
			if !present || !Equivalent(av, ev, opts) {
				return false
			}
		}
		return true
	}

	switch a := actual.(type) {
	case string:
		e, ok := expected.(string)
		return ok && a == e
	case bool:
		e, ok := expected.(bool)
		return ok && a == e
	}

	return reflect.DeepEqual(actual, expected)
}

func floatsEqual(a, e float64, opts CompareOptions) bool {
	rel := opts.FloatTolerance
	if rel <= 0 {
		rel = defaultFloatRelTolerance
	}
	diff := a - e
	if diff < 0 {
		diff = -diff
	}
	scale := a
	if scale < 0 {
		scale = -scale
	}
	if e > scale {
		scale = e
	} else if -e > scale {
		scale = -e
	}
	return diff <= floatAbsTolerance+rel*scale
}

func orderedEqual(actual, expected []interface{}, opts CompareOptions) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range expected {
		if !Equivalent(actual[i], expected[i], opts) {
			return false
		}
	}
	return true
}

// multisetEqual matches every expected element against a distinct actual
// element. Quadratic, which is fine at grading sizes.
func multisetEqual(actual, expected []interface{}, opts CompareOptions) bool {
	if len(actual) != len(expected) {
		return false
	}
	used := make([]bool, len(actual))
	for _, ev := range expected {
		found := false
		for i, av := range actual {
			if used[i] {
				continue
			}
			if Equivalent(av, ev, opts) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func asNumber(v interface{}) (f float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true, true
	case int32:
		return float64(n), true, true
	case int64:
		return float64(n), true, true
	case float32:
		return float64(n), false, true
	case float64:
		// JSON decodes every number as float64; treat integral values as
		// ints so they match interpreter results exactly.
		if n == float64(int64(n)) {
			return n, true, true
		}
		return n, false, true
	default:
		return 0, false, false
	}
}

func asSequence(v interface{}) ([]interface{}, bool) {
	if s, ok := v.([]interface{}); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asMapping(v interface{}) (map[string]interface{}, bool) {
	if m, ok := v.(map[string]interface{}); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]interface{}, rv.Len())
	for _, key := range rv.MapKeys() {
		out[key.String()] = rv.MapIndex(key).Interface()
	}
	return out, true
}
