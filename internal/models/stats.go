package models

// Stats is a snapshot of the wall's activity.
type Stats struct {
	Wishes int64 `json:"wishes"`
	Likes  int64 `json:"likes"`
	Slides int64 `json:"slides"`
}

// Upload describes a stored image.
type Upload struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
