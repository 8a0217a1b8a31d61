// Package content carries the portal's seed collections and the static records shown
// on the home page. Every call returns fresh slices so callers may mutate them freely.
package content

import (
	"strconv"

	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/google/uuid"
)

// seedID derives a stable identifier for a seed record, e.g. seedID("product", 1).
func seedID(kind string, n int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("cpa-ye:"+kind+":"+strconv.Itoa(n))).String()
}

func Users() []models.User {
	return []models.User{
		{ID: seedID("user", 1), Username: "admin", Role: models.RoleAdmin, Name: "System Administrator"},
		{ID: seedID("user", 2), Username: "donor", Role: models.RoleDonor, Name: "Partner Organization"},
	}
}

func Products() []models.Product {
	return []models.Product{
		{ID: seedID("product", 1), Code: "6291001", NameAr: "حليب ممتاز (1 لتر)", NameEn: "Premium Milk (1L)", Price: 850, Unit: "Bottle", LastUpdated: "2023-10-25", Category: "Dairy"},
		{ID: seedID("product", 2), Code: "6291002", NameAr: "أرز بسمتي (5 كجم)", NameEn: "Basmati Rice (5kg)", Price: 6500, Unit: "Bag", LastUpdated: "2023-10-24", Category: "Grains"},
		{ID: seedID("product", 3), Code: "6291003", NameAr: "دقيق أبيض (10 كجم)", NameEn: "White Flour (10kg)", Price: 4200, Unit: "Bag", LastUpdated: "2023-10-26", Category: "Grains"},
		{ID: seedID("product", 4), Code: "6291004", NameAr: "زيت طهي (1.5 لتر)", NameEn: "Cooking Oil (1.5L)", Price: 2100, Unit: "Bottle", LastUpdated: "2023-10-20", Category: "Oils"},
		{ID: seedID("product", 5), Code: "6291005", NameAr: "سكر أبيض (2 كجم)", NameEn: "White Sugar (2kg)", Price: 1800, Unit: "Packet", LastUpdated: "2023-10-22", Category: "Sugar"},
		{ID: seedID("product", 6), Code: "6291006", NameAr: "أسطوانة غاز منزلي", NameEn: "Cooking Gas Cylinder", Price: 7500, Unit: "Cylinder", LastUpdated: "2023-10-27", Category: "Energy"},
	}
}

func News() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:       seedID("news", 1),
			Image:    "https://images.unsplash.com/photo-1577962917302-cd874c4e31d2?auto=format&fit=crop&w=800&q=80",
			Date:     "11 Nov 2025",
			TitleKey: "news_school_title",
			TitleAr:  "ترحيب بقرار تخفيض الرسوم الدراسية",
			TitleEn:  "Welcoming School Fees Reduction",
			DescKey:  "news_school_desc",
			DescAr:   "رحبت جمعية حماية المستهلك بمحافظة تعز بقرار المحافظ رقم (137) لسنة 2025م، القاضي بتحديد وتخفيض الرسوم الدراسية في مدارس التعليم الأهلي والخاص بالمحافظة للعام الدراسي 2025–2026م.",
			DescEn:   "CPA welcomes Governor Decree (137) to reduce private school fees, a major step for parents' rights.",
		},
		{
			ID:       seedID("news", 2),
			Image:    "https://images.unsplash.com/photo-1578916171728-46686eac8d58?auto=format&fit=crop&w=800&q=80",
			Date:     "02 Aug 2025",
			TitleKey: "news_campaign_title",
			TitleAr:  "حملة ميدانية لضبط الأسعار",
			TitleEn:  "Field Campaign for Price Control",
			DescKey:  "news_campaign_desc",
			DescAr:   "خرجت صباح اليوم سبع لجان ميدانية تابعة لمكتب الصناعة والتجارة بمحافظة تعز، بالتعاون مع الأجهزة الأمنية، لتنفيذ حملة تفتيش ميدانية تستهدف ضبط المخالفين.",
			DescEn:   "Seven field committees inspected markets to enforce prices after currency appreciation, with CPA logistical support.",
		},
		{
			ID:       seedID("news", 3),
			Image:    "https://images.unsplash.com/photo-1608686207856-001b95cf60ca?auto=format&fit=crop&w=800&q=80",
			Date:     "01 Sep 2025",
			TitleKey: "news_food_title",
			TitleAr:  "تحذير بشأن الوجبات الجاهزة",
			TitleEn:  "Warning: Ready-made Meals",
			DescKey:  "news_food_desc",
			DescAr:   "تؤكد جمعية حماية المستهلك – تعز على المواطنين الحذر والترقب وضرورة الحرص عند شراء المخبوزات أو الوجبات الجاهزة والدواجن المشوية.",
			DescEn:   "CPA urges caution when buying baked goods/poultry, checking weights/hygiene, and reporting violations.",
		},
	}
}

func Jobs() []models.JobOpportunity {
	return []models.JobOpportunity{
		{
			ID:            seedID("job", 1),
			TitleAr:       "محامي قضايا تجارية",
			TitleEn:       "Commercial Lawyer",
			Type:          models.JobPartTime,
			Location:      "Taiz City",
			DescriptionAr: "مطلوب محامي ذو خبرة في القوانين التجارية اليمنية لتمثيل الجمعية في قضايا حماية المستهلك.",
			DescriptionEn: "Seeking an experienced lawyer in Yemeni commercial laws to represent the association in consumer protection cases.",
			Deadline:      "2023-12-30",
			PostedDate:    "2023-11-01",
		},
		{
			ID:            seedID("job", 2),
			TitleAr:       "متطوع ميداني - رصد أسعار",
			TitleEn:       "Field Volunteer - Price Monitoring",
			Type:          models.JobVolunteer,
			Location:      "Al-Qahira District",
			DescriptionAr: "نبحث عن شباب متحمسين للمساعدة في رصد أسعار السلع الأساسية بشكل دوري.",
			DescriptionEn: "We are looking for enthusiastic youth to help monitor basic commodity prices regularly.",
			Deadline:      "Open",
			PostedDate:    "2023-11-05",
		},
	}
}

func Media() []models.MediaItem {
	return []models.MediaItem{
		{ID: seedID("media", 1), Type: models.MediaVideo, URL: "https://images.unsplash.com/photo-1541818869156-d3d134141542?auto=format&fit=crop&w=800&q=80", CaptionAr: "تصريح رئيس الجمعية في قناة تعز تايم", CaptionEn: "Association President Statement", Date: "2025-08-02"},
		{ID: seedID("media", 2), Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1577962917302-cd874c4e31d2?auto=format&fit=crop&w=800&q=80", CaptionAr: "اجتماع مناقشة الرسوم الدراسية", CaptionEn: "School Fees Discussion Meeting", Date: "2025-11-10"},
		{ID: seedID("media", 3), Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1626125345510-470304d4150c?auto=format&fit=crop&w=800&q=80", CaptionAr: "وقفة احتجاجية: الدواء خدمة لا سلعة", CaptionEn: "Protest: Medicine is a service, not a commodity", Date: "2025-09-01"},
	}
}

func Profile() models.OrganizationProfile {
	return models.OrganizationProfile{
		MissionAr: "حماية حقوق المستهلك في الحصول على سلع وخدمات آمنة وبأسعار عادلة، وتعزيز الوعي الاستهلاكي في المجتمع.",
		MissionEn: "Protecting consumer rights to access safe goods and services at fair prices, and promoting consumer awareness in society.",
		VisionAr:  "أن نكون الصوت الأول والمدافع الأقوى عن حقوق المستهلك في الجمهورية اليمنية.",
		VisionEn:  "To be the leading voice and strongest defender of consumer rights in the Republic of Yemen.",
		AboutAr:   "جمعية حماية المستهلك - تعز، هي منظمة مجتمع مدني غير ربحية، تأسست وفقاً لقانون الجمعيات والمؤسسات الأهلية، وتعمل بموجب قانون حماية المستهلك اليمني رقم (46) لسنة 2008.",
		AboutEn:   "Consumer Protection Association - Taiz is a non-profit civil society organization, established under the Law of Associations and Foundations, operating under the Yemeni Consumer Protection Law No. (46) of 2008.",
		Phone:     "+967 4 123456",
		Email:     "info@cpa-ye.org",
		AddressAr: "شارع جمال، تعز، الجمهورية اليمنية",
		AddressEn: "Gamal Street, Taiz, Republic of Yemen",
	}
}

func CRMStats() models.CRMStats {
	return models.CRMStats{
		TotalDonors:    145,
		ActiveProjects: 12,
		TotalDonations: 2500000,
		LastSync:       "2023-11-10 09:30 AM",
	}
}

func Partners() []models.Partner {
	return []models.Partner{
		{ID: seedID("partner", 1), NameAr: "وزارة الصناعة والتجارة", NameEn: "Ministry of Industry & Trade", Logo: "https://via.placeholder.com/150?text=MOIT"},
		{ID: seedID("partner", 2), NameAr: "الغرفة التجارية - تعز", NameEn: "Taiz Chamber of Commerce", Logo: "https://via.placeholder.com/150?text=COC"},
		{ID: seedID("partner", 3), NameAr: "برنامج الأمم المتحدة الإنمائي", NameEn: "UNDP", Logo: "https://via.placeholder.com/150?text=UNDP"},
		{ID: seedID("partner", 4), NameAr: "منظمة الصحة العالمية", NameEn: "WHO", Logo: "https://via.placeholder.com/150?text=WHO"},
	}
}

func CurrencyRates() []models.CurrencyRate {
	return []models.CurrencyRate{
		{Currency: "USD", Buy: 1650, Sell: 1660, Indicator: models.IndicatorStable},
		{Currency: "SAR", Buy: 435, Sell: 438, Indicator: models.IndicatorUp},
	}
}
