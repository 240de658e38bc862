// Package catalog serves the demo inventory shown on the browse pages.
// Listing persistence is not wired yet; the shapes mirror what the property
// and blog tables will eventually carry.
package catalog

import (
	"fmt"
	"strconv"
)

type Listing struct {
	ID        string
	Title     string
	Location  string
	Price     int
	Bedrooms  int
	Bathrooms int
	ImageURL  string
	Available bool
}

type Post struct {
	ID       int
	Title    string
	Excerpt  string
	Author   string
	Date     string
	ImageURL string
}

var listingImages = []string{
	"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&q=80",
	"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
	"https://images.unsplash.com/photo-1540518614846-7eded433c457?w=800&q=80",
	"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80",
	"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=800&q=80",
	"https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&q=80",
	"https://images.unsplash.com/photo-1493809842364-78817add7ffb?w=800&q=80",
	"https://images.unsplash.com/photo-1505843517617-1f35e406c1fe?w=800&q=80",
	"https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&q=80",
}

// Listings returns the full demo inventory.
func Listings() []Listing {
	items := make([]Listing, 0, len(listingImages))
	for i := range listingImages {
		location := "Student District, Walking Distance"
		if i%2 == 0 {
			location = "Downtown, Near Campus"
		}
		items = append(items, Listing{
			ID:        strconv.Itoa(i + 1),
			Title:     fmt.Sprintf("Student Accommodation %d", i+1),
			Location:  location,
			Price:     550 + i*50,
			Bedrooms:  i%3 + 1,
			Bathrooms: i%2 + 1,
			ImageURL:  listingImages[i],
			Available: i%4 != 0,
		})
	}
	return items
}

func ListingByID(id string) (Listing, bool) {
	for _, listing := range Listings() {
		if listing.ID == id {
			return listing, true
		}
	}
	return Listing{}, false
}

// Featured returns the listings highlighted on the home page.
func Featured() []Listing {
	return Listings()[:3]
}

func Posts() []Post {
	return []Post{
		{
			ID:       1,
			Title:    "10 Tips for Finding the Perfect Student Housing",
			Excerpt:  "Discover essential strategies to find your ideal accommodation near campus.",
			Author:   "Sarah Johnson",
			Date:     "Jan 15, 2025",
			ImageURL: "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&q=80",
		},
		{
			ID:       2,
			Title:    "Understanding Your Lease Agreement",
			Excerpt:  "Learn what to look for in rental contracts and protect your rights as a tenant.",
			Author:   "Mike Chen",
			Date:     "Jan 10, 2025",
			ImageURL: "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?w=800&q=80",
		},
		{
			ID:       3,
			Title:    "Budget-Friendly Housing Options for Students",
			Excerpt:  "Maximize your savings while securing quality accommodation.",
			Author:   "Emily Davis",
			Date:     "Jan 5, 2025",
			ImageURL: "https://images.unsplash.com/photo-1460317442991-0ec209397118?w=800&q=80",
		},
	}
}
