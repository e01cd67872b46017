package storage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{
			"https://res.cloudinary.com/demo/image/upload/v1712345678/technicians/documents/card_abc123.jpg",
			"technicians/documents/card_abc123",
		},
		{
			"https://res.cloudinary.com/demo/image/upload/technicians/selfies/selfie_xyz.png",
			"technicians/selfies/selfie_xyz",
		},
		{"https://example.com/not/a/delivery/url.jpg", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := PublicIDFromURL(tc.url); got != tc.want {
			t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
