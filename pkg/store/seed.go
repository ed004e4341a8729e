package store

import "catalog-service/internal/model"

// SeedProducts returns the catalog a fresh document is created with.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Brand: "Apple", Name: "iPhone 15", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "128 GB", Price: "359 900"}, {Model: "256 GB", Price: "414 900"}}},
		{ID: 2, Brand: "Apple", Name: "iPhone 16e", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "128 GB", Price: "314 900"}, {Model: "256 GB", Price: "375 000"}}},
		{ID: 3, Brand: "Apple", Name: "iPhone 16", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "128 GB", Price: "405 000"}, {Model: "256 GB", Price: "465 000"}}},
		{ID: 4, Brand: "Apple", Name: "iPhone 16+", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "128 GB", Price: "475 000"}, {Model: "256 GB", Price: "529 900"}}},
		{ID: 5, Brand: "Apple", Name: "iPhone 17", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "256 GB eSIM", Price: "484 900"}, {Model: "256 GB SIM", Price: "495 900"}}},
		{ID: 6, Brand: "Apple", Name: "iPhone Air", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "256 GB eSIM", Price: "545 900"}, {Model: "512 GB eSIM", Price: "649 900"}}},
		{ID: 7, Brand: "Apple", Name: "iPhone 17 Pro", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "256 GB eSIM", Price: "645 000"}, {Model: "512 GB eSIM", Price: "765 000"}, {Model: "1 TB eSIM", Price: "895 000"}}},
		{ID: 8, Brand: "Apple", Name: "iPad mini 6", Emoji: "📱", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "64 GB Wi-Fi", Price: "214 900"}, {Model: "256 GB Wi-Fi", Price: "314 900"}, {Model: "256 GB SIM", Price: "414 900"}}},
		{ID: 9, Brand: "Apple", Name: "iPad Air 7", Emoji: "💻", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "11\" 128 GB Wi-Fi", Price: "324 900"}, {Model: "11\" 256 GB Wi-Fi", Price: "374 900"}, {Model: "13\" 256 GB Wi-Fi", Price: "524 900"}}},
		{ID: 10, Brand: "Apple", Name: "iPad 11 (A16)", Emoji: "💻", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "128 GB Wi-Fi", Price: "194 900"}, {Model: "256 GB Wi-Fi", Price: "264 900"}}},
		{ID: 11, Brand: "Apple", Name: "iPad Pro 11\" M5", Emoji: "💻", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "256 GB Wi-Fi", Price: "554 900"}, {Model: "512 GB SIM", Price: "864 900"}}},
		{ID: 12, Brand: "Apple", Name: "iPad Pro 13\" M5", Emoji: "💻", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "256 GB Wi-Fi", Price: "674 900"}, {Model: "512 GB SIM", Price: "914 900"}, {Model: "1 TB SIM", Price: "1 094 900"}}},
		{ID: 13, Brand: "Apple", Name: "AirPods", Emoji: "🎧", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "AirPods 4", Price: "77 400"}, {Model: "AirPods 4 ANC", Price: "112 900"}, {Model: "AirPods Pro 3", Price: "168 600"}, {Model: "AirPods Max", Price: "322 900"}}},
		{ID: 14, Brand: "Apple", Name: "Apple Watch", Emoji: "⌚", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "Watch 11, 42mm", Price: "249 900"}, {Model: "Watch 11, 46mm", Price: "274 900"}, {Model: "Watch Ultra-3, 49mm", Price: "528 900"}}},
		{ID: 15, Brand: "Ray-Ban × Meta", Name: "Ray-Ban Gen-2", Emoji: "🕶️", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "Ray-Ban Meta Gen-2", Price: "338 900"}, {Model: "Meta Photochromic Gen-2", Price: "364 900"}}},
		{ID: 16, Brand: "Garmin", Name: "Garmin Смарт-часы", Emoji: "⌚", Tag: "В наличии", Available: true, Variants: []model.Variant{{Model: "Venu 4, 41mm", Price: "342 900"}, {Model: "Venu 4, 45mm", Price: "349 900"}, {Model: "Forerunner 965", Price: "402 900"}, {Model: "Forerunner 970", Price: "440 900"}, {Model: "Fenix 8, 47mm", Price: "667 900"}}},
		{ID: 17, Brand: "WHOOP", Name: "WHOOP Фитнес-трекер", Emoji: "💪", Tag: "Как у Роналду", Available: true, Variants: []model.Variant{{Model: "WHOOP Peak 5.0", Price: "195 900"}, {Model: "WHOOP Life MG", Price: "268 900"}}},
		{ID: 18, Brand: "DJI", Name: "DJI Osmo Pocket 3", Emoji: "🎥", Tag: "Для контента", Available: true, Variants: []model.Variant{{Model: "Osmo Pocket 3 Creator Combo", Price: "367 900"}}},
		{ID: 19, Brand: "Canon", Name: "Canon G7X Mark III", Emoji: "📷", Tag: "Для влогеров", Available: true, Variants: []model.Variant{{Model: "Canon G7X Mark III", Price: "764 900"}}},
	}
}
