package codegen

import "testing"

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"x", "x"},
		{"snake_case", "snake_case"},
		{"int", "v_int"},
		{"args", "v_args"},
		{"fn_add", "v_fn_x5fadd"},
		{"eval_add", "v_eval_x5fadd"},
		{"flip_it", "v_flip_x5fit"},
		{"v_x", "v_v_x5fx"},
		{"x'", "v_x_x27"},
		{"λ", "v__u03bb"},
	}
	for _, tc := range tests {
		if got := identifier(tc.name); got != tc.want {
			t.Errorf("identifier(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMangleIsInjective(t *testing.T) {
	names := []string{"a+", "a_x2b", "f_1", "f", "a_", "a__", "_", "λb", ";bb", "x3bb", "is_null"}
	seen := map[string]string{}
	for _, name := range names {
		m := mangle(name)
		if other, ok := seen[m]; ok {
			t.Errorf("%q and %q both mangle to %q", name, other, m)
		}
		seen[m] = name
	}
}

func TestIdentifiersDoNotCollide(t *testing.T) {
	names := []string{"int", "v_int", "a+", "v_a_x2b", "fn_add", "v_fn_x5fadd", "x"}
	seen := map[string]string{}
	for _, name := range names {
		id := identifier(name)
		if other, ok := seen[id]; ok {
			t.Errorf("%q and %q both map to %q", name, other, id)
		}
		seen[id] = name
	}
}
