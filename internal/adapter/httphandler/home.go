package httphandler

type (
	heroSlide struct {
		Modifier    string
		Subtitle    string
		TitleLines  []string
		Description string
		Action      string
		ActionHref  string
		Image       string
		ImageAlt    string
	}

	featuredCategory struct {
		Label string
		Value string
		Image string
	}

	milestone struct {
		Year        string
		Title       string
		Description string
	}

	commitment struct {
		Title       string
		Description string
	}

	socialLink struct {
		Label string
		Href  string
	}
)

var heroSlides = []heroSlide{
	{
		Modifier:   "aura",
		Subtitle:   "CÂU CHUYỆN CỦA CHÚNG TÔI",
		TitleLines: []string{"Một tư duy của", "thủ công mỹ nghệ"},
		Description: `AURA - sự "Độc đáo" (Unique) và "Hiếm có" (Rare) trong ` +
			`"Nghệ thuật" (Artistry) của người nghệ nhân (Artisan).`,
		Action:     "VỀ CHÚNG TÔI",
		ActionHref: "/#hanh-trinh",
		Image:      "/static/img/hero-aura.svg",
		ImageAlt:   "Cửa hàng thủ công mỹ nghệ Aura",
	},
	{
		Modifier:   "fiber",
		Subtitle:   "SẢN PHẨM CỦA CHÚNG TÔI",
		TitleLines: []string{"Đồ gia dụng sợi", "tự nhiên"},
		Description: "Sản phẩm của chúng tôi được phát triển với thiết kế hiện đại, " +
			"cuộc sống thực tế, chi phí hợp lí và tay nghề thủ công đẹp mắt.",
		Action:     "TẤT CẢ SẢN PHẨM",
		ActionHref: "/san-pham",
		Image:      "/static/img/hero-fiber.svg",
		ImageAlt:   "Đồ gia dụng sợi tự nhiên",
	},
	{
		Modifier:   "fair",
		Subtitle:   "HỘI CHỢ THƯƠNG MẠI",
		TitleLines: []string{"Gặp chúng tôi tại", "Lifestyle Fair 2025"},
		Description: "Từ ngày 15 - 20/10/2025 tại sảnh B9.02 - Gian hàng " +
			"IE104 tại UIT Thành phố Hồ Chí Minh, Việt Nam.",
		Action:     "CHI TIẾT HỘI CHỢ",
		ActionHref: "/#lien-he",
	},
}

var featuredCategories = []featuredCategory{
	{Label: "Nội thất", Value: "Nội thất", Image: "/static/img/noi-that.svg"},
	{Label: "Túi xách", Value: "Túi xách", Image: "/static/img/tui-xach.svg"},
	{Label: "Trang trí", Value: "Trang trí", Image: "/static/img/trang-tri.svg"},
}

var journey = []milestone{
	{
		Year:        "1985",
		Title:       "Khởi nguồn từ làng nghề",
		Description: "Bắt đầu từ một xưởng nhỏ tại làng gốm Bát Tràng, chúng tôi kế thừa tinh hoa thủ công truyền thống.",
	},
	{
		Year:        "1995",
		Title:       "Mở rộng quy mô",
		Description: "Phát triển thêm các sản phẩm dệt may và đồ gỗ thủ công, hợp tác với nhiều làng nghề Việt Nam.",
	},
	{
		Year:        "2005",
		Title:       "Ra mắt thương hiệu",
		Description: "Chính thức thành lập thương hiệu 'Aura', đưa sản phẩm làng nghề đến gần hơn với người tiêu dùng.",
	},
	{
		Year:        "2015",
		Title:       "Hướng đến quốc tế",
		Description: "Xuất khẩu sản phẩm thủ công Việt Nam ra thị trường quốc tế, mang tinh hoa văn hóa đến toàn cầu.",
	},
	{
		Year:        "2025",
		Title:       "Tương lai bền vững",
		Description: "Cam kết phát triển bền vững, bảo tồn làng nghề truyền thống và tạo sinh kế cho nghệ nhân.",
	},
}

var commitments = []commitment{
	{
		Title: "VẬT LIỆU TỰ NHIÊN VÀ BỀN VỮNG",
		Description: "Chúng tôi sử dụng các vật liệu thân thiện với môi trường như tre, mây, cói biếc, " +
			"lục bình và tài nguyên tái chế để tạo ra các sản phẩm của mình.",
	},
	{
		Title: "TRỰC TIẾP TỪ NHÀ SẢN XUẤT",
		Description: "Chúng tôi là nhà sản xuất ban đầu, không có người trung gian, không có chi phí bổ sung. " +
			"Kiểm soát chất lượng nhất quán từ xưởng đến giao hàng.",
	},
	{
		Title: "KINH NGHIỆM XUẤT KHẨU TOÀN CẦU",
		Description: "Với hơn một thập kỷ xuất khẩu sang Châu Âu, Châu Mỹ và Châu Á, chúng tôi hiểu " +
			"các tiêu chuẩn quốc tế, bao bì và hậu cần.",
	},
}

const contactEmail = "sale@auracraft.com"

var socialLinks = []socialLink{
	{Label: "F", Href: "https://facebook.com/"},
	{Label: "I", Href: "https://instagram.com/"},
	{Label: "Y", Href: "https://youtube.com/"},
}

type homePage struct {
	Chrome
	Slides      []heroSlide
	Featured    []featuredCategory
	Journey     []milestone
	Commitments []commitment
	Email       string
	Socials     []socialLink
}

func newHomePage(c Chrome) homePage {
	return homePage{
		Chrome:      c,
		Slides:      heroSlides,
		Featured:    featuredCategories,
		Journey:     journey,
		Commitments: commitments,
		Email:       contactEmail,
		Socials:     socialLinks,
	}
}
