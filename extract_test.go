package vlist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	type tc struct {
		children []Node
		expected []Descriptor
	}

	tests := map[string]tc{
		"literal computed and default sizes": {
			children: []Node{
				Item{Key: "a", Size: Fixed(100)},
				Item{Key: "b", Size: Computed(func() int { return 75 })},
				Item{Key: "c"},
			},
			expected: []Descriptor{
				{Key: "a", Height: 100},
				{Key: "b", Height: 75},
				{Key: "c", Height: 50},
			},
		},
		"single zero-height item": {
			children: []Node{Item{Key: "x", Size: Fixed(0)}},
			expected: []Descriptor{{Key: "x", Height: 0}},
		},
		"empty input": {
			children: []Node{},
			expected: []Descriptor{},
		},
		"duplicate keys pass through": {
			children: []Node{
				Item{Key: "a", Size: Fixed(10)},
				Item{Key: "a", Size: Fixed(20)},
			},
			expected: []Descriptor{
				{Key: "a", Height: 10},
				{Key: "a", Height: 20},
			},
		},
		"stray nodes are dropped": {
			children: []Node{
				"header text",
				Item{Key: "a", Size: Fixed(3)},
				42,
				nil,
				(*Item)(nil),
				struct{ Key string }{Key: "not an item"},
				&Item{Key: "b", Size: Fixed(4)},
			},
			expected: []Descriptor{
				{Key: "a", Height: 3},
				{Key: "b", Height: 4},
			},
		},
		"fragments are flattened in order": {
			children: []Node{
				Item{Key: "a", Size: Fixed(1)},
				Fragment{
					Item{Key: "b", Size: Fixed(2)},
					[]Node{Item{Key: "c", Size: Fixed(3)}, "stray"},
				},
				Item{Key: "d", Size: Fixed(4)},
			},
			expected: []Descriptor{
				{Key: "a", Height: 1},
				{Key: "b", Height: 2},
				{Key: "c", Height: 3},
				{Key: "d", Height: 4},
			},
		},
		"content is carried": {
			children: []Node{Item{Key: "a", Content: "hello"}},
			expected: []Descriptor{{Key: "a", Height: DefaultHeight, Content: "hello"}},
		},
		"negative size is kept": {
			children: []Node{Item{Key: "a", Size: Fixed(-3)}},
			expected: []Descriptor{{Key: "a", Height: -3}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Extract(tt.children)
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_MissingKey(t *testing.T) {
	type tc struct {
		children         []Node
		expectedPosition int
	}

	tests := map[string]tc{
		"only item": {
			children:         []Node{Item{Size: Fixed(10)}},
			expectedPosition: 0,
		},
		"after valid items": {
			children: []Node{
				Item{Key: "a"},
				"stray",
				Item{Key: "b"},
				&Item{Content: "no key"},
			},
			expectedPosition: 2,
		},
		"inside fragment": {
			children: []Node{
				Fragment{Item{Key: "a"}, Item{}},
			},
			expectedPosition: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Extract(tt.children)
			if got != nil {
				t.Errorf("Extract() returned partial output %v", got)
			}

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Extract() error = %v, want *ConfigurationError", err)
			}
			if !errors.Is(err, ErrMissingKey) {
				t.Errorf("errors.Is(err, ErrMissingKey) = false for %v", err)
			}
			if cfgErr.Position != tt.expectedPosition {
				t.Errorf("Position = %d, want %d", cfgErr.Position, tt.expectedPosition)
			}
		})
	}
}

func TestExtract_ComputedInvokedOnce(t *testing.T) {
	calls := 0
	children := []Node{
		Item{Key: "a", Size: Computed(func() int {
			calls++
			return 12
		})},
	}

	descs, err := Extract(children)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("computed size called %d times, want 1", calls)
	}
	if descs[0].Height != 12 {
		t.Errorf("Height = %d, want 12", descs[0].Height)
	}
}

func TestExtract_FailureSkipsComputed(t *testing.T) {
	calls := 0
	children := []Node{
		Item{Key: "a", Size: Computed(func() int {
			calls++
			return 1
		})},
		Item{Size: Fixed(1)},
	}

	if _, err := Extract(children); err == nil {
		t.Fatal("Extract() returned no error for missing key")
	}
	if calls != 0 {
		t.Errorf("computed size called %d times on failed pass, want 0", calls)
	}
}

func TestHeights(t *testing.T) {
	descs := []Descriptor{{Key: "a", Height: 4}, {Key: "b", Height: 0}, {Key: "c", Height: 9}}
	if diff := cmp.Diff([]int{4, 0, 9}, Heights(descs)); diff != "" {
		t.Errorf("Heights() mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateKeys(t *testing.T) {
	type tc struct {
		keys     []string
		expected map[string][]int
	}

	tests := map[string]tc{
		"no duplicates": {
			keys:     []string{"a", "b", "c"},
			expected: map[string][]int{},
		},
		"one pair": {
			keys:     []string{"a", "b", "a"},
			expected: map[string][]int{"a": {0, 2}},
		},
		"several": {
			keys:     []string{"x", "x", "y", "x", "y"},
			expected: map[string][]int{"x": {0, 1, 3}, "y": {2, 4}},
		},
		"empty": {
			keys:     nil,
			expected: map[string][]int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			descs := make([]Descriptor, len(tt.keys))
			for i, k := range tt.keys {
				descs[i] = Descriptor{Key: k}
			}
			if diff := cmp.Diff(tt.expected, DuplicateKeys(descs)); diff != "" {
				t.Errorf("DuplicateKeys() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigurationError_Error(t *testing.T) {
	type tc struct {
		err      *ConfigurationError
		expected string
	}

	tests := map[string]tc{
		"with hint": {
			err:      &ConfigurationError{Position: 3, Err: ErrMissingKey, Hint: "add a key"},
			expected: "vlist: item 3: missing key (add a key)",
		},
		"without hint": {
			err:      &ConfigurationError{Position: 0, Err: ErrMissingKey},
			expected: "vlist: item 0: missing key",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}
