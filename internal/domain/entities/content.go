package entities

import (
	"regexp"
	"strconv"
	"time"
)

// FestivalDay is the day an artist plays.
type FestivalDay string

const (
	DayFriday   FestivalDay = "friday"
	DaySaturday FestivalDay = "saturday"
	DaySunday   FestivalDay = "sunday"
)

func (d FestivalDay) Valid() bool {
	return d == DayFriday || d == DaySaturday || d == DaySunday
}

// Stage is where an artist plays.
type Stage string

const (
	StageMain    Stage = "main-stage"
	StageOutside Stage = "outside-stage"
	StageTent    Stage = "tent-area"
)

func (s Stage) Valid() bool {
	return s == StageMain || s == StageOutside || s == StageTent
}

type SocialPlatform string

const (
	PlatformInstagram  SocialPlatform = "instagram"
	PlatformTwitter    SocialPlatform = "twitter"
	PlatformFacebook   SocialPlatform = "facebook"
	PlatformSpotify    SocialPlatform = "spotify"
	PlatformSoundCloud SocialPlatform = "soundcloud"
)

func (p SocialPlatform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTwitter, PlatformFacebook, PlatformSpotify, PlatformSoundCloud:
		return true
	}
	return false
}

type SocialLink struct {
	Platform SocialPlatform `json:"platform"`
	URL      string         `json:"url"`
}

// Artist is a lineup entry. Day, Stage and both times are optional until the
// schedule is published; StartTime and EndTime use 24h "HH:mm".
type Artist struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Day         FestivalDay  `json:"day,omitempty"`
	StartTime   string       `json:"start_time,omitempty"`
	EndTime     string       `json:"end_time,omitempty"`
	Stage       Stage        `json:"stage,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	ImageID     *int64       `json:"image_id,omitempty"`
	SocialLinks []SocialLink `json:"social_links,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ParseClock returns the minutes after midnight for an "HH:mm" time.
func ParseClock(s string) (int, bool) {
	if !clockPattern.MatchString(s) {
		return 0, false
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m, true
}

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
)

func (s NewsStatus) Valid() bool {
	return s == NewsStatusDraft || s == NewsStatusPublished
}

// NewsArticle is a festival news post. Drafts and posts dated in the future
// are hidden from anonymous readers.
type NewsArticle struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	CoverImageID  int64      `json:"cover_image_id"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	Category      string     `json:"category,omitempty"`
	PublishedDate time.Time  `json:"published_date"`
	Status        NewsStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (a NewsArticle) VisibleAt(now time.Time) bool {
	return a.Status == NewsStatusPublished && !a.PublishedDate.After(now)
}

// FAQItem is a question on the FAQ page. Lower Order values come first and
// items without one go last.
type FAQItem struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     *int64    `json:"order,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
