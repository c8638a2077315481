package storage

import "testing"

func TestExtractPublicID(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v123456789/cars/sample.jpg": "cars/sample",
		"https://res.cloudinary.com/demo/image/upload/cars/sample.jpg":            "cars/sample",
		"https://res.cloudinary.com/demo/video/upload/v1/parts/clip.mp4":          "parts/clip",
		"https://res.cloudinary.com/demo/image/upload/solo.png":                   "solo",
		"https://example.com/no/upload/segment":                                   "segment",
		"https://example.com/nothing/here.jpg":                                    "",
	}

	for url, want := range cases {
		if got := ExtractPublicID(url); got != want {
			t.Fatalf("ExtractPublicID(%s): got %q, want %q", url, got, want)
		}
	}
}
