package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListings(t *testing.T) {
	t.Parallel()

	listings := Listings()
	require.Len(t, listings, 9)

	first := listings[0]
	require.Equal(t, "1", first.ID)
	require.Equal(t, "Student Accommodation 1", first.Title)
	require.Equal(t, 550, first.Price)
	require.False(t, first.Available) // every fourth listing is taken

	require.True(t, listings[1].Available)
	require.Equal(t, 600, listings[1].Price)
}

func TestListingByID(t *testing.T) {
	t.Parallel()

	listing, ok := ListingByID("5")
	require.True(t, ok)
	require.Equal(t, "Student Accommodation 5", listing.Title)

	_, ok = ListingByID("999")
	require.False(t, ok)
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	require.Len(t, Featured(), 3)
}

func TestPosts(t *testing.T) {
	t.Parallel()

	posts := Posts()
	require.Len(t, posts, 3)
	require.Equal(t, "10 Tips for Finding the Perfect Student Housing", posts[0].Title)
}
