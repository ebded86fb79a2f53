package starlarkexec

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
)

// toStarlark converts a catalog value into a freshly built interpreter
// value. Because every invocation converts its own copy, submitted code can
// mutate what it receives without affecting the stored test case or any
// later invocation.
func toStarlark(v interface{}) (starlark.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(val), nil
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case float64:
		// JSON numbers arrive as float64; keep integral ones as ints so
		// solutions can index with them.
		if val == float64(int64(val)) {
			return starlark.MakeInt64(int64(val)), nil
		}
		return starlark.Float(val), nil
	case []interface{}:
		elems := make([]starlark.Value, 0, len(val))
		for _, e := range val {
			sv, err := toStarlark(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, sv)
		}
		return starlark.NewList(elems), nil
	case map[string]interface{}:
		dict := starlark.NewDict(len(val))
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sv, err := toStarlark(val[k])
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported argument type %T", v)
	}
}

// fromStarlark converts an interpreter value back into plain Go data for
// comparison and reporting. Total: unknown kinds degrade to their string
// rendering rather than failing.
func fromStarlark(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil
	case starlark.Bool:
		return bool(val)
	case starlark.Int:
		if i, ok := val.Int64(); ok {
			return i
		}
		return val.String()
	case starlark.Float:
		return float64(val)
	case starlark.String:
		return string(val)
	case *starlark.List:
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = fromStarlark(val.Index(i))
		}
		return out
	case starlark.Tuple:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = fromStarlark(e)
		}
		return out
	case *starlark.Dict:
		out := make(map[string]interface{}, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if ok {
				out[string(key)] = fromStarlark(item[1])
			} else {
				out[item[0].String()] = fromStarlark(item[1])
			}
		}
		return out
	case *starlark.Set:
		out := make([]interface{}, 0, val.Len())
		iter := val.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			out = append(out, fromStarlark(elem))
		}
		return out
	default:
		return v.String()
	}
}

// toKwargs builds the keyword argument list for the entry point call.
// Keys are sorted so calls are deterministic regardless of map order.
func toKwargs(args map[string]interface{}) ([]starlark.Tuple, error) {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kwargs := make([]starlark.Tuple, 0, len(args))
	for _, k := range keys {
		sv, err := toStarlark(args[k])
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", k, err)
		}
		kwargs = append(kwargs, starlark.Tuple{starlark.String(k), sv})
	}
	return kwargs, nil
}
