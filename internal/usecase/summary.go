package usecase

import (
	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-repos/internal/domain"
)

// Summarize computes star statistics over a repository listing.
// An empty listing yields the zero summary.
func Summarize(repos []*domain.Repository) domain.StarSummary {
	if len(repos) == 0 {
		return domain.StarSummary{}
	}

	data := make(stats.Float64Data, 0, len(repos))
	for _, r := range repos {
		data = append(data, float64(r.StargazersCount))
	}

	// The inputs are non-empty, so the only error these functions return cannot occur.
	total, _ := data.Sum()
	mean, _ := data.Mean()
	median, _ := data.Median()
	maxStars, _ := data.Max()

	return domain.StarSummary{
		Count:       len(repos),
		TotalStars:  int(total),
		MeanStars:   mean,
		MedianStars: median,
		MaxStars:    int(maxStars),
	}
}
