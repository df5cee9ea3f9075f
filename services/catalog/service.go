// Package catalog serves artwork metadata for banner creation. It has
// the shape of a third-party lookup client but is backed by a fixed
// in-memory table; there is no external call behind it.
package catalog

import (
	"managerpro/models"
	"managerpro/utils"
)

// Item is one catalog entry offered to the banner editor.
type Item struct {
	ID       string                `json:"id"`
	Category models.BannerCategory `json:"category"`
	Title    string                `json:"title"`
	Year     int                   `json:"year,omitempty"`
	Synopsis string                `json:"synopsis"`
	ImageURL string                `json:"imageUrl"`
}

// Service answers catalog lookups from the built-in table.
type Service struct {
	items []Item
}

// NewService returns the catalog with its built-in entries.
func NewService() *Service {
	return &Service{items: builtinItems}
}

// Search returns entries of the given category whose title matches the
// query, accent-insensitively. An empty category means all categories.
func (s *Service) Search(category models.BannerCategory, query string) []Item {
	results := []Item{}
	for _, item := range s.items {
		if category != "" && item.Category != category {
			continue
		}
		if !utils.MatchesSearch(item.Title, query) {
			continue
		}
		results = append(results, item)
	}
	return results
}

var builtinItems = []Item{
	{ID: "m1", Category: models.CategoryMovie, Title: "Oppenheimer", Year: 2023,
		Synopsis: "The story of the physicist behind the atomic bomb.",
		ImageURL: "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg"},
	{ID: "m2", Category: models.CategoryMovie, Title: "Dune: Part Two", Year: 2024,
		Synopsis: "Paul Atreides unites with the Fremen to seek revenge.",
		ImageURL: "https://image.tmdb.org/t/p/w500/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg"},
	{ID: "m3", Category: models.CategoryMovie, Title: "Inside Out 2", Year: 2024,
		Synopsis: "New emotions arrive as Riley reaches her teenage years.",
		ImageURL: "https://image.tmdb.org/t/p/w500/vpnVM9B6NMmQpWeZvzLvDESb2QY.jpg"},
	{ID: "s1", Category: models.CategorySeries, Title: "Breaking Bad", Year: 2008,
		Synopsis: "A chemistry teacher turns to manufacturing methamphetamine.",
		ImageURL: "https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjizRGt.jpg"},
	{ID: "s2", Category: models.CategorySeries, Title: "La Casa de Papel", Year: 2017,
		Synopsis: "Eight thieves take hostages inside the Royal Mint of Spain.",
		ImageURL: "https://image.tmdb.org/t/p/w500/reEMJA1uzscCbkpeRJeTT2bjqUp.jpg"},
	{ID: "s3", Category: models.CategorySeries, Title: "Stranger Things", Year: 2016,
		Synopsis: "A missing boy uncovers supernatural forces in a small town.",
		ImageURL: "https://image.tmdb.org/t/p/w500/49WJfeN0moxb9IPfGn8AIqMGskD.jpg"},
	{ID: "e1", Category: models.CategorySport, Title: "Flamengo x Palmeiras",
		Synopsis: "Campeonato Brasileiro, round highlight of the week.",
		ImageURL: "https://example.com/banners/flamengo-palmeiras.jpg"},
	{ID: "e2", Category: models.CategorySport, Title: "Real Madrid x Barcelona",
		Synopsis: "El Clásico, live with every camera angle.",
		ImageURL: "https://example.com/banners/el-clasico.jpg"},
	{ID: "e3", Category: models.CategorySport, Title: "UFC Fight Night",
		Synopsis: "Main card live from Las Vegas.",
		ImageURL: "https://example.com/banners/ufc-night.jpg"},
}
