package models

import (
	"fmt"
	"strconv"
	"strings"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleDonor Role = "donor"
	RoleStaff Role = "staff"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleStaff, RoleDonor}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDonor, RoleStaff:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

type Product struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	NameAr      string `json:"nameAr"`
	NameEn      string `json:"nameEn"`
	Price       int    `json:"price"`
	Unit        string `json:"unit"`
	LastUpdated string `json:"lastUpdated"`
	Category    string `json:"category"`
}

// NewsItem text prefers the literal Ar/En fields and falls back to the translation keys.
type NewsItem struct {
	ID       string `json:"id"`
	TitleKey string `json:"titleKey"`
	TitleAr  string `json:"titleAr,omitempty"`
	TitleEn  string `json:"titleEn,omitempty"`
	DescKey  string `json:"descKey"`
	DescAr   string `json:"descAr,omitempty"`
	DescEn   string `json:"descEn,omitempty"`
	Date     string `json:"date"`
	Image    string `json:"image"`
}

type JobType string

const (
	JobFullTime  JobType = "Full-time"
	JobPartTime  JobType = "Part-time"
	JobVolunteer JobType = "Volunteer"
)

var JobTypes = []JobType{JobFullTime, JobPartTime, JobVolunteer}

func ParseJobType(s string) (JobType, error) {
	switch JobType(s) {
	case JobFullTime, JobPartTime, JobVolunteer:
		return JobType(s), nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

type JobOpportunity struct {
	ID            string  `json:"id"`
	TitleAr       string  `json:"titleAr"`
	TitleEn       string  `json:"titleEn"`
	Type          JobType `json:"type"`
	Location      string  `json:"location"`
	DescriptionAr string  `json:"descriptionAr"`
	DescriptionEn string  `json:"descriptionEn"`
	Deadline      string  `json:"deadline"`
	PostedDate    string  `json:"postedDate"`
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type MediaItem struct {
	ID        string    `json:"id"`
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	CaptionAr string    `json:"captionAr"`
	CaptionEn string    `json:"captionEn"`
	Date      string    `json:"date"`
}

type OrganizationProfile struct {
	MissionAr string `json:"missionAr"`
	MissionEn string `json:"missionEn"`
	VisionAr  string `json:"visionAr"`
	VisionEn  string `json:"visionEn"`
	AboutAr   string `json:"aboutAr"`
	AboutEn   string `json:"aboutEn"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	AddressAr string `json:"addressAr"`
	AddressEn string `json:"addressEn"`
}

type CRMStats struct {
	TotalDonors    int    `json:"totalDonors"`
	ActiveProjects int    `json:"activeProjects"`
	TotalDonations int    `json:"totalDonations"`
	LastSync       string `json:"lastSync"`
}

type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusReviewed ReportStatus = "reviewed"
	StatusResolved ReportStatus = "resolved"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ParseGeoPoint reads browser supplied coordinates. Anything unusable yields nil.
func ParseGeoPoint(lat, lng string) *GeoPoint {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat == "" || lng == "" {
		return nil
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || !(la >= -90 && la <= 90) {
		return nil
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil || !(ln >= -180 && ln <= 180) {
		return nil
	}
	return &GeoPoint{Lat: la, Lng: ln}
}

type ViolationReport struct {
	ID            string       `json:"id"`
	ProductCode   string       `json:"productCode,omitempty"`
	ProductName   string       `json:"productName,omitempty"`
	OfficialPrice int          `json:"officialPrice,omitempty"`
	ReportedPrice float64      `json:"reportedPrice"`
	ShopName      string       `json:"shopName,omitempty"`
	Location      *GeoPoint    `json:"location"`
	Description   string       `json:"description"`
	AIAnalysis    string       `json:"aiAnalysis,omitempty"`
	Status        ReportStatus `json:"status"`
	Timestamp     string       `json:"timestamp"`
	EvidenceImage string       `json:"evidenceImage,omitempty"`
}

type Partner struct {
	ID     string `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Logo   string `json:"logo"`
}

type Indicator string

const (
	IndicatorUp     Indicator = "up"
	IndicatorDown   Indicator = "down"
	IndicatorStable Indicator = "stable"
)

type CurrencyRate struct {
	Currency  string    `json:"currency"`
	Buy       int       `json:"buy"`
	Sell      int       `json:"sell"`
	Indicator Indicator `json:"indicator"`
}

// Icon identifies the pictogram drawn next to a service or rights entry.
type Icon int

const (
	IconSearch Icon = iota
	IconBalance
	IconBullhorn
	IconTime
	IconTag
	IconInvoice
	IconAlert
)

// Glyph resolves an icon to the character rendered in its place.
func (i Icon) Glyph() string {
	switch i {
	case IconSearch:
		return "🔍"
	case IconBalance:
		return "⚖️"
	case IconBullhorn:
		return "📢"
	case IconTime:
		return "⏱️"
	case IconTag:
		return "🏷️"
	case IconInvoice:
		return "🧾"
	case IconAlert:
		return "⚠️"
	}
	panic(fmt.Sprintf("unhandled icon %d", int(i)))
}

type Slide struct {
	ID       int
	Image    string
	TitleKey string
	SubKey   string
	Color    string
}

type ServiceItem struct {
	Icon     Icon
	TitleKey string
	DescKey  string
}

type RightItem struct {
	ID          string
	Icon        Icon
	QuestionKey string
	AnswerKey   string
}

type PublicationType string

const (
	PublicationPDF   PublicationType = "pdf"
	PublicationExcel PublicationType = "excel"
)

type Publication struct {
	ID       int
	Type     PublicationType
	TitleKey string
	Size     string
	URL      string
}

type DashboardStat struct {
	Value    string
	LabelKey string
	Color    string
}
