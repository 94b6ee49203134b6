package paper_test

import (
	"testing"

	"github.com/paperpress/paperpress-server/internal/paper"
)

func TestEstimatePages(t *testing.T) {
	cases := []struct {
		mcq, short, long int
		want             int
	}{
		{0, 0, 0, 1},
		{1, 0, 0, 2},  // ceil(0.15+1)
		{20, 10, 5, 6}, // ceil(3+0.8+0.6+1) = ceil(5.4)
		{10, 0, 0, 3},  // ceil(1.5+1)
		{0, 12, 0, 2},  // ceil(0.96+1)
	}
	for _, c := range cases {
		if got := paper.EstimatePages(c.mcq, c.short, c.long); got != c.want {
			t.Errorf("EstimatePages(%d,%d,%d) = %d, want %d", c.mcq, c.short, c.long, got, c.want)
		}
	}
}
