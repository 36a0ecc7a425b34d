package service

import (
	"fmt"

	"cheongyak-calculator/config"
	"cheongyak-calculator/domain"
)

type ShareService struct {
	cfg config.ShareConfig
}

func NewShareService(cfg config.ShareConfig) *ShareService {
	return &ShareService{cfg: cfg}
}

// Available reports whether the Kakao share integration can be offered.
func (s *ShareService) Available() bool {
	return s.cfg.Enabled && s.cfg.KakaoAppKey != ""
}

// BuildCard builds the Kakao feed card for a result. It returns
// ErrShareUnavailable when sharing is switched off or no app key is set.
func (s *ShareService) BuildCard(result domain.ScoreResult) (domain.ShareCard, error) {
	if !s.Available() {
		return domain.ShareCard{}, ErrShareUnavailable
	}

	link := domain.ShareLink{MobileWebURL: s.cfg.SiteURL, WebURL: s.cfg.SiteURL}
	return domain.ShareCard{
		AppKey:      s.cfg.KakaoAppKey,
		ObjectType:  "feed",
		Title:       ShareTitle,
		Description: ShareDescription(result),
		ImageURL:    s.cfg.ImageURL,
		Link:        link,
		Buttons: []domain.ShareButton{
			{Title: ShareButtonTitle, Link: link},
		},
	}, nil
}

func ShareDescription(result domain.ScoreResult) string {
	return fmt.Sprintf("총 %d점 / %d점 (%s 등급)", result.TotalScore, MaxTotalScore, result.Tier.Label())
}
