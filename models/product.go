package models

// RawProduct holds the fields located in one listing container, before
// price parsing. Links are already absolute.
type RawProduct struct {
	Name      string
	PriceText string
	ImageURL  string
	SourceURL string
}

// Product is the normalised record written to the products table.
// SourceURL is the upsert conflict key.
type Product struct {
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"-"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	SourceURL     string  `json:"source_url"`
	Description   string  `json:"description"`
	Rating        int     `json:"rating"`
	IsTrending    bool    `json:"is_trending"`
}

// RunReport summarises one pipeline run.
type RunReport struct {
	Containers   int
	Extracted    int
	Processed    int
	Skipped      int
	Failed       int
	DryRun       bool
	MinPrice     float64
	MaxPrice     float64
	AveragePrice float64
}
