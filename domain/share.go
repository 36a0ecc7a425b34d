package domain

// ShareLink mirrors the link object of a Kakao feed template.
type ShareLink struct {
	MobileWebURL string `json:"mobileWebUrl"`
	WebURL       string `json:"webUrl"`
}

type ShareButton struct {
	Title string    `json:"title"`
	Link  ShareLink `json:"link"`
}

// ShareCard is the feed payload the client hands to the Kakao share SDK.
type ShareCard struct {
	AppKey      string        `json:"appKey"`
	ObjectType  string        `json:"objectType"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl"`
	Link        ShareLink     `json:"link"`
	Buttons     []ShareButton `json:"buttons"`
}
