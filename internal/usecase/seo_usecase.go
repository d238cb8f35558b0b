package usecase

import "context"

// YouTubeSEO holds title and description suggestions.
type YouTubeSEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Hashtags    string `json:"hashtags"`
}

// CaptionSEO holds a caption and its hashtags.
type CaptionSEO struct {
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// SEOSuggestions is always returned fully populated, with empty strings when
// the model produced nothing usable.
type SEOSuggestions struct {
	YouTube   YouTubeSEO `json:"youtube"`
	TikTok    CaptionSEO `json:"tiktok"`
	Instagram CaptionSEO `json:"instagram"`
}

// SEOUsecase is a stateless call to a text model.
type SEOUsecase interface {
	GenerateSEO(ctx context.Context, prompt string) (*SEOSuggestions, error)
}
