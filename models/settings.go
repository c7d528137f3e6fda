package models

import "time"

// SiteSettings is the singleton site-wide settings document, editable from
// the admin panel. Reads merge the stored document over defaults so new
// fields always have a value.
type SiteSettings struct {
	Phone          string `bson:"phone" json:"phone"`
	PhoneDisplay   string `bson:"phone_display" json:"phoneDisplay"`
	Email          string `bson:"email" json:"email"`
	WhatsappNumber string `bson:"whatsapp_number" json:"whatsappNumber"`

	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`

	WeekdayHours  string `bson:"weekday_hours" json:"weekdayHours"`
	WeekendHours  string `bson:"weekend_hours" json:"weekendHours"`
	OperatingDays string `bson:"operating_days" json:"operatingDays"`

	FacebookURL  string `bson:"facebook_url" json:"facebookUrl"`
	InstagramURL string `bson:"instagram_url" json:"instagramUrl"`
	TwitterURL   string `bson:"twitter_url" json:"twitterUrl"`
	WhatsappURL  string `bson:"whatsapp_url" json:"whatsappUrl"`

	BusinessName string `bson:"business_name" json:"businessName"`
	Tagline      string `bson:"tagline" json:"tagline"`

	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
