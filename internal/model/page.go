package model

import (
	"encoding/json"
	"strings"
	"time"
)

type PageType string

const (
	PageTypeLanding PageType = "landing"
	PageTypeAbout   PageType = "about"
	PageTypeDonate  PageType = "donate"
	PageTypeContact PageType = "contact"
	PageTypeFAQ     PageType = "faq"
)

// RequiredPageTypes must all exist and be published before an organization can go public.
var RequiredPageTypes = []PageType{PageTypeLanding, PageTypeAbout}

var pageTypes = map[PageType]struct{}{
	PageTypeLanding: {},
	PageTypeAbout:   {},
	PageTypeDonate:  {},
	PageTypeContact: {},
	PageTypeFAQ:     {},
}

// ParsePageType normalises a URL slug such as "About" or " faq " to a known page type.
func ParsePageType(slug string) (PageType, bool) {
	pt := PageType(strings.ToLower(strings.TrimSpace(slug)))
	if _, ok := pageTypes[pt]; !ok {
		return "", false
	}
	return pt, true
}

type OrganizationPage struct {
	ID             int64           `json:"id,string"`
	OrganizationID int64           `json:"organization_id,string"`
	PageType       PageType        `json:"page_type"`
	ContentConfig  json.RawMessage `json:"content_config"`
	IsPublished    bool            `json:"is_published"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
