package content

import "github.com/RaidanPro1/CPA-YePortal/internal/models"

// DefaultNewsImage is used for articles published from the admin panel.
const DefaultNewsImage = "https://images.unsplash.com/photo-1504711434969-e33886168f5c?auto=format&fit=crop&w=800&q=80"

// ReportsMapImage is the static backdrop of the admin reports map.
const ReportsMapImage = "https://images.unsplash.com/photo-1524661135-423995f22d0b?auto=format&fit=crop&w=1600&q=80"

func Slides() []models.Slide {
	return []models.Slide{
		{ID: 1, Image: "https://images.unsplash.com/photo-1577563908411-5077b6dc7624?auto=format&fit=crop&w=1920&q=80", TitleKey: "heroTitle1", SubKey: "heroSub1", Color: "bg-primary"},
		{ID: 2, Image: "https://images.unsplash.com/photo-1616486338812-3dadae4b4f9d?auto=format&fit=crop&w=1920&q=80", TitleKey: "heroTitle2", SubKey: "heroSub2", Color: "bg-secondary"},
		{ID: 3, Image: "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&w=1920&q=80", TitleKey: "heroTitle3", SubKey: "heroSub3", Color: "bg-accent"},
	}
}

func Services() []models.ServiceItem {
	return []models.ServiceItem{
		{Icon: models.IconSearch, TitleKey: "srv_1_title", DescKey: "srv_1_desc"},
		{Icon: models.IconBalance, TitleKey: "srv_2_title", DescKey: "srv_2_desc"},
		{Icon: models.IconBullhorn, TitleKey: "srv_3_title", DescKey: "srv_3_desc"},
	}
}

func Rights() []models.RightItem {
	return []models.RightItem{
		{ID: "r1", Icon: models.IconTime, QuestionKey: "q_return", AnswerKey: "a_return"},
		{ID: "r2", Icon: models.IconTag, QuestionKey: "q_price", AnswerKey: "a_price"},
		{ID: "r3", Icon: models.IconInvoice, QuestionKey: "q_invoice", AnswerKey: "a_invoice"},
		{ID: "r4", Icon: models.IconAlert, QuestionKey: "q_fraud", AnswerKey: "a_fraud"},
	}
}

func Publications() []models.Publication {
	return []models.Publication{
		{ID: 1, Type: models.PublicationPDF, TitleKey: "pub_1_name", Size: "2.5 MB", URL: "#"},
		{ID: 2, Type: models.PublicationPDF, TitleKey: "pub_2_name", Size: "5.1 MB", URL: "#"},
		{ID: 3, Type: models.PublicationExcel, TitleKey: "pub_3_name", Size: "1.0 MB", URL: "#"},
	}
}

func DashboardStats() []models.DashboardStat {
	return []models.DashboardStat{
		{Value: "1,250+", LabelKey: "stat_reports", Color: "bg-red"},
		{Value: "98%", LabelKey: "stat_resolved", Color: "bg-green"},
		{Value: "500+", LabelKey: "stat_inspections", Color: "bg-blue"},
	}
}
