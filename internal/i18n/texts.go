package i18n

var texts = map[string]Text{
	"brandName": {AR: "جمعية حماية المستهلك", EN: "CPA - Taiz"},
	"home": {AR: "الرئيسية", EN: "Home"},
	"news": {AR: "الأخبار", EN: "News"},
	"library": {AR: "المكتبة", EN: "Gallery"},
	"prices": {AR: "الأسعار", EN: "Prices"},
	"report": {AR: "بلغ عن مخالفة", EN: "Report Violation"},
	"admin": {AR: "لوحة التحكم", EN: "Admin Panel"},
	"careers": {AR: "الوظائف", EN: "Careers"},
	"about": {AR: "من نحن", EN: "About Us"},
	"heroTitle1": {AR: "معاً.. لسوق آمن ومستهلك محمي", EN: "Together for a Safe Market"},
	"heroSub1": {AR: "الجمعية الأولى في تعز للدفاع عن حقوقك.", EN: "The first association in Taiz defending your rights."},
	"heroTitle2": {AR: "رقابة ميدانية مستمرة", EN: "Continuous Field Monitoring"},
	"heroSub2": {AR: "فرقنا متواجدة في الأسواق لضمان الجودة.", EN: "Our teams ensure quality and price stability."},
	"heroTitle3": {AR: "اعرف حقوقك القانونية", EN: "Know Your Legal Rights"},
	"heroSub3": {AR: "القانون اليمني يكفل لك الحق في الأمان والاختيار.", EN: "Yemeni law guarantees your right to safety and choice."},
	"cta_report": {AR: "قدّم بلاغاً الآن", EN: "Report Now"},
	"cta_prices": {AR: "قائمة الأسعار", EN: "Price List"},
	"services_title": {AR: "خدماتنا ومهامنا", EN: "Our Services"},
	"srv_1_title": {AR: "الرصد والرقابة", EN: "Monitoring"},
	"srv_1_desc": {AR: "نراقب الأسواق ونرصد المخالفات.", EN: "We monitor markets and track violations."},
	"srv_2_title": {AR: "الحماية القانونية", EN: "Legal Protection"},
	"srv_2_desc": {AR: "نمثل صوتك أمام القضاء.", EN: "We represent you before the judiciary."},
	"srv_3_title": {AR: "التوعية الشاملة", EN: "Awareness"},
	"srv_3_desc": {AR: "اعرف حقوقك وكيف تحمي نفسك.", EN: "Know your rights and stay protected."},
	"news_title": {AR: "أخبار وأنشطة الجمعية", EN: "News & Activities"},
	"news_school_title": {AR: "ترحيب بقرار تخفيض الرسوم الدراسية", EN: "Welcoming School Fees Reduction"},
	"news_school_desc": {AR: "رحبت الجمعية بقرار المحافظ رقم (137) بتحديد وتخفيض رسوم المدارس الأهلية، خطوة هامة لحماية حقوق أولياء الأمور.", EN: "CPA welcomes Governor Decree (137) to reduce private school fees, a major step for parents' rights."},
	"news_campaign_title": {AR: "حملة ميدانية لضبط الأسعار", EN: "Field Campaign for Price Control"},
	"news_campaign_desc": {AR: "نزول سبع لجان ميدانية لضبط المخالفين بعد تحسن الصرف، بمساهمة لوجستية من الجمعية لضمان التزام التجار.", EN: "Seven field committees inspected markets to enforce prices after currency appreciation, with CPA logistical support."},
	"news_food_title": {AR: "تحذير بشأن الوجبات الجاهزة", EN: "Warning: Ready-made Meals"},
	"news_food_desc": {AR: "تؤكد الجمعية على الحذر عند شراء المخبوزات والدواجن، والتأكد من الوزن والنظافة، وتدعو للإبلاغ عن المخالفات.", EN: "CPA urges caution when buying baked goods/poultry, checking weights/hygiene, and reporting violations."},
	"read_more": {AR: "اقرأ المزيد ←", EN: "Read More →"},
	"gallery_title": {AR: "مكتبة الصور", EN: "Photo Gallery"},
	"pubs_title": {AR: "الإصدارات واللوائح", EN: "Publications & Regulations"},
	"pub_1_name": {AR: "النظام الأساسي للجمعية", EN: "Association Bylaws"},
	"pub_2_name": {AR: "قانون حماية المستهلك", EN: "Consumer Protection Law"},
	"pub_3_name": {AR: "قائمة الأسعار", EN: "Price List"},
	"rights_title": {AR: "دليلك القانوني", EN: "Your Legal Guide"},
	"q_return": {AR: "هل يحق لي استرجاع السلعة؟", EN: "Can I return a product?"},
	"a_return": {AR: "نعم، يحق لك استرجاع السلعة أو استبدالها خلال فترة الضمان إذا ظهر فيها عيب.", EN: "Yes, you have the right to return or exchange within warranty if defective."},
	"q_price": {AR: "وجدت سعراً أعلى من القائمة؟", EN: "Found a price higher than listed?"},
	"a_price": {AR: "يجب على التاجر الالتزام بالقائمة السعرية، ويمكنك الإبلاغ عن أي زيادة.", EN: "Merchants must adhere to price lists; report any hike."},
	"q_invoice": {AR: "أهمية فاتورة الشراء؟", EN: "Why is the invoice important?"},
	"a_invoice": {AR: "الفاتورة هي ضمان حقك القانوني عند حدوث أي خلاف.", EN: "The invoice is your legal guarantee in case of disputes."},
	"q_fraud": {AR: "كيف أكتشف الغش التجاري؟", EN: "How to detect fraud?"},
	"a_fraud": {AR: "تأكد من تاريخ الصلاحية، بلد المنشأ، وسلامة العبوة.", EN: "Check expiry date, origin, and packaging integrity."},
	"transparency_title": {AR: "لوحة الشفافية", EN: "Transparency Dashboard"},
	"stat_reports": {AR: "بلاغ تم استلامه", EN: "Reports Received"},
	"stat_resolved": {AR: "نسبة الحل", EN: "Resolution Rate"},
	"stat_inspections": {AR: "نزول ميداني", EN: "Field Inspections"},
	"top_violations": {AR: "السلع الأكثر مخالفة", EN: "Top Violations"},
	"partners_title": {AR: "شركاء النجاح", EN: "Our Partners"},
	"currency_title": {AR: "أسعار الصرف - تعز", EN: "Exchange Rates - Taiz"},
	"footer_about": {AR: "عن الجمعية", EN: "About CPA"},
	"footer_desc": {AR: "منظمة مدنية طوعية تعمل وفق قانون الجمعيات والمؤسسات الأهلية.", EN: "Voluntary civil organization operating under the Law of Associations."},
	"footer_contact": {AR: "تواصل معنا", EN: "Contact Us"},
	"rights": {AR: "© 2024 CPA-Ye. جميع الحقوق محفوظة.", EN: "© 2024 CPA-Ye. All Rights Reserved."},
	"tickerText": {AR: "+++ عاجل: حملة ميدانية لمراقبة الأسعار +++ تأكد من الصلاحية +++", EN: "+++ Urgent: Field campaign on prices +++ Check expiry dates +++"},
	"product_name": {AR: "اسم المنتج", EN: "Product Name"},
	"price": {AR: "السعر", EN: "Price"},
	"observed_price": {AR: "السعر الذي وجدته", EN: "Price Found"},
	"violation_alert": {AR: "تنبيه: زيادة سعرية بمقدار", EN: "Alert: Price hike of"},
	"shop_name": {AR: "اسم المحل", EN: "Shop Name"},
	"location": {AR: "الموقع", EN: "Location"},
	"loc_success": {AR: "تم تحديد الموقع بنجاح", EN: "Location Set Successfully"},
	"details": {AR: "تفاصيل البلاغ", EN: "Report Details"},
	"submit": {AR: "إرسال البلاغ", EN: "Submit Report"},
	"report_title": {AR: "الإبلاغ عن مخالفة", EN: "Report a Violation"},
	"applyNow": {AR: "قدّم الآن", EN: "Apply Now"},
	"analyzing": {AR: "جاري التحليل بالذكاء الاصطناعي...", EN: "Analyzing with AI..."},
	"successMsg": {AR: "تم إرسال البلاغ بنجاح!", EN: "Report Submitted Successfully!"},
	"aiFeedback": {AR: "تحليل المساعد الذكي:", EN: "AI Assistant Analysis:"},
	"dashboard": {AR: "لوحة التحكم", EN: "Dashboard"},
	"settings": {AR: "الإعدادات", EN: "Settings"},
	"login": {AR: "تسجيل الدخول", EN: "Login"},
	"username": {AR: "اسم المستخدم", EN: "Username"},
	"password": {AR: "كلمة المرور", EN: "Password"},
	"users": {AR: "المستخدمين", EN: "Users"},
	"content": {AR: "إدارة المحتوى", EN: "Content Mgmt"},

	// Portal additions
	"select_product": {AR: "اختر المنتج", EN: "Select Product"},
	"submit_again": {AR: "إرسال بلاغ آخر", EN: "Submit Again"},
	"evidence": {AR: "صورة إثبات (اختياري)", EN: "Evidence Photo (optional)"},
	"report_invalid": {AR: "يرجى تعبئة جميع الحقول المطلوبة بشكل صحيح.", EN: "Please fill in all required fields correctly."},
	"invalid_credentials": {AR: "بيانات الدخول غير صحيحة", EN: "Invalid credentials"},
	"logout": {AR: "تسجيل الخروج", EN: "Logout"},
	"partner_login": {AR: "دخول الشركاء", EN: "Partner Portal Login"},
	"code": {AR: "الرمز", EN: "Code"},
	"category": {AR: "الفئة", EN: "Category"},
	"price_yr": {AR: "السعر (ريال)", EN: "Price (YR)"},
	"mission": {AR: "رسالتنا", EN: "Our Mission"},
	"vision": {AR: "رؤيتنا", EN: "Our Vision"},
	"deadline": {AR: "آخر موعد", EN: "Deadline"},
	"buy": {AR: "شراء", EN: "Buy"},
	"sell": {AR: "بيع", EN: "Sell"},
	"evidence_invalid": {AR: "صورة الإثبات يجب أن تكون JPG أو PNG وبحجم لا يتجاوز 5MB.", EN: "The evidence photo must be a JPG or PNG of at most 5MB."},
	"about_title": {AR: "عن الجمعية", EN: "About CPA-Ye"},
	"join_team": {AR: "انضم إلى فريقنا", EN: "Join Our Team"},
	"secure_portal": {AR: "بوابة الجمعية الآمنة", EN: "CPA-Ye Secure Portal"},
	"restricted_access": {AR: "دخول مقيد. للمخولين فقط.", EN: "Restricted Access. Authorized Personnel Only."},
	"registered_law": {AR: "مسجلة بموجب القانون رقم 46 لسنة 2008", EN: "Registered under Law No. 46 (2008)"},
	"not_found": {AR: "الصفحة غير موجودة", EN: "Page not found"},
	"back_home": {AR: "العودة للرئيسية", EN: "Back to Home"},
}
