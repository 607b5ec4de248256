package shared

import "github.com/Kallyan98/Hotel-Recommender-System/internal/domain"

// SeedOffers is the reference catalog loaded by cmd/seeder. Prices are base
// nightly rates in INR.
var SeedOffers = []domain.Offer{
	{
		Name: "Sea Breeze Resort", PriceAdult: 4800, PriceChild: 650,
		Currency: "INR", Rating: 3.7, Location: "Goa",
		Amenities:   []string{"sea front"},
		Sightseeing: []string{"Baga Beach", "Fort Aguada"},
	},
	{
		Name: "Lakeview Serenity Hotel", PriceAdult: 4200, PriceChild: 600,
		Currency: "INR", Rating: 4.2, Location: "Udaipur",
		Amenities:   []string{"lake view"},
		Sightseeing: []string{"City Palace", "Lake Pichola"},
	},
	{
		Name: "Budget Stay Central", PriceAdult: 2500, PriceChild: 500,
		Currency: "INR", Rating: 3.0, Location: "New Delhi",
		Amenities:   []string{"city center"},
		Sightseeing: []string{"India Gate", "Connaught Place"},
	},
	{
		Name: "Mountain Escape Lodge", PriceAdult: 3500, PriceChild: 550,
		Currency: "INR", Rating: 4.1, Location: "Manali",
		Amenities:   []string{"mountain view"},
		Sightseeing: []string{"Solang Valley", "Hidimba Temple"},
	},
	{
		Name: "Royal Heritage Palace", PriceAdult: 5000, PriceChild: 700,
		Currency: "INR", Rating: 4.5, Location: "Jaipur",
		Amenities:   []string{"luxury", "heritage"},
		Sightseeing: []string{"Amber Fort", "Hawa Mahal"},
	},
}
