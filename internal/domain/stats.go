// Package domain contains the core data structures and domain logic for the application.
package domain

// StarSummary holds aggregate star counts for one user's repository listing.
type StarSummary struct {
	Count       int     `json:"count"`
	TotalStars  int     `json:"total_stars"`
	MeanStars   float64 `json:"mean_stars"`
	MedianStars float64 `json:"median_stars"`
	MaxStars    int     `json:"max_stars"`
}
