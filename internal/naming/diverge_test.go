package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiverge(t *testing.T) {
	for key, tc := range map[string]struct {
		s1, s2       []int
		want1, want2 []int
	}{
		"last but one differs": {
			s1: []int{1, 2, 3, 4}, s2: []int{1, 2, 4, 4},
			want1: []int{1, 2, 3}, want2: []int{1, 2, 4},
		},
		"identical": {
			s1: []int{1, 2, 3, 4}, s2: []int{1, 2, 3, 4},
			want1: []int{1, 2, 3, 4}, want2: []int{1, 2, 3, 4},
		},
		"first element differs": {
			s1: []int{2, 2, 3, 4}, s2: []int{1, 2, 3, 4},
			want1: []int{2}, want2: []int{1},
		},
		"unequal length": {
			s1: []int{1, 3}, s2: []int{1, 2, 3, 4},
			want1: []int{1, 3}, want2: []int{1, 2},
		},
		"prefix": {
			s1: []int{1, 2}, s2: []int{1, 2, 3},
			want1: []int{1, 2}, want2: []int{1, 2},
		},
		"empty": {
			s1: []int{}, s2: []int{1},
			want1: []int{}, want2: []int{},
		},
	} {
		t.Run(key, func(t *testing.T) {
			got1, got2 := diverge(tc.s1, tc.s2)
			assert.Equal(t, tc.want1, got1)
			assert.Equal(t, tc.want2, got2)
			assert.Len(t, got2, len(got1))
		})
	}
}
