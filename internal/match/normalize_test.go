package match

import (
	"reflect"
	"testing"
)

// TestNormalize 覆盖归一化的核心约定:
// 小写化、非字母数字一律视为分隔、连续分隔不产生空词元。
func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"大小写与标点", "Hello, World!", []string{"hello", "world"}},
		{"保留数字", "quote for 5k users", []string{"quote", "for", "5k", "users"}},
		{"连续分隔符", "a -- b\t\tc", []string{"a", "b", "c"}},
		{"撇号拆分", "what's your pricing", []string{"what", "s", "your", "pricing"}},
		{"纯标点", "?!...", nil},
		{"空串", "", nil},
		{"首尾空白", "  hi  ", []string{"hi"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize(c.input)
			if len(got) == 0 && len(c.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Normalize(%q) = %v, 期望 %v", c.input, got, c.want)
			}
		})
	}
}
