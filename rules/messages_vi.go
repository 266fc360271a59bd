package rules

import "fmt"

var vietnamese = localization{
	groupNames: map[Group]string{
		GroupBasic:              "SEO Cơ bản",
		GroupAdditional:         "Bổ sung",
		GroupTitleReadability:   "Khả năng đọc tiêu đề",
		GroupContentReadability: "Khả năng đọc nội dung",
	},
	skipMessage: "Bỏ qua.",
	lexicon: Lexicon{
		TransitionWords: []string{
			"tuy nhiên", "nhưng", "vì vậy", "do đó", "ngoài ra", "hơn nữa",
			"tóm lại", "ví dụ", "hơn thế nữa", "cụ thể là", "ngược lại", "đồng thời",
			"mặc dù", "cho nên", "thậm chí", "đặc biệt là", "nói cách khác",
			"tuy vậy", "tuy thế", "tổng kết lại", "thêm vào đó", "kết luận là",
			"mặt khác", "bên cạnh đó", "về cơ bản", "nói tóm lại",
		},
		QuestionWords:  []string{"làm sao", "tại sao", "thế nào", "bao giờ", "đâu là", "ai là"},
		GenericAnchors: []string{"tại đây", "xem thêm", "click here", "truy cập", "đường dẫn", "link"},
		PassiveMarkers: []string{"được", "bị"},
	},
	rules: map[string]ruleText{
		"keyword-in-title": {
			name:        "Từ khóa trong Tiêu đề SEO",
			description: "Từ khóa chính phải xuất hiện trong tiêu đề SEO, tốt nhất ở đầu",
			messages: Messages{
				Pass: func(d Data) string {
					if d.Bool("atBeginning") {
						return "Tuyệt vời! Từ khóa chính được sử dụng ở đầu tiêu đề SEO."
					}
					return "Từ khóa chính có trong tiêu đề. Tốt hơn nếu đưa lên đầu."
				},
				Fail: Literal("Từ khóa chính không có trong tiêu đề SEO. Hãy thêm vào!"),
				Skip: Literal("Cần có tiêu đề và từ khóa chính để phân tích."),
			},
		},
		"title-length": {
			name:        "Độ dài Tiêu đề",
			description: "Tiêu đề nên nằm trong khoảng 30-60 ký tự",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Tiêu đề dài %d ký tự. Độ dài lý tưởng!", d.Int("length"))
				},
				Fail: func(d Data) string {
					if d.Int("length") < titleMinLength {
						return fmt.Sprintf("Tiêu đề quá ngắn (%d ký tự). Nên ít nhất %d ký tự.", d.Int("length"), titleMinLength)
					}
					return fmt.Sprintf("Tiêu đề quá dài (%d ký tự). Nên dưới %d ký tự.", d.Int("length"), titleMaxLength)
				},
				Skip: Literal("Không có tiêu đề để phân tích."),
			},
		},
		"keyword-in-description": {
			name:        "Từ khóa trong Mô tả Meta",
			description: "Từ khóa chính phải xuất hiện trong mô tả meta",
			messages: Messages{
				Pass: Literal("Đã sử dụng từ khóa chính trong Mô tả Meta SEO."),
				Fail: Literal("Mô tả Meta không chứa từ khóa chính."),
				Skip: Literal("Cần có mô tả meta và từ khóa chính để phân tích."),
			},
		},
		"description-length": {
			name:        "Độ dài Mô tả Meta",
			description: "Mô tả meta nên nằm trong khoảng 120-160 ký tự",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Mô tả meta dài %d ký tự. Rất tốt!", d.Int("length"))
				},
				Fail: func(d Data) string {
					if d.Int("length") < descriptionMinLength {
						return fmt.Sprintf("Mô tả meta quá ngắn (%d ký tự). Nên ít nhất %d ký tự.", d.Int("length"), descriptionMinLength)
					}
					return fmt.Sprintf("Mô tả meta quá dài (%d ký tự). Nên dưới %d ký tự.", d.Int("length"), descriptionMaxLength)
				},
				Skip: Literal("Không có mô tả meta để phân tích."),
			},
		},
		"keyword-in-url": {
			name:        "Từ khóa trong URL",
			description: "Từ khóa chính nên xuất hiện trong URL/slug",
			messages: Messages{
				Pass: Literal("Từ khóa chính đã được sử dụng trong URL."),
				Fail: Literal("URL không chứa từ khóa chính."),
				Skip: Literal("Cần có URL/slug và từ khóa chính để phân tích."),
			},
		},
		"keyword-in-first-10-percent": {
			name:        "Từ khóa trong 10% đầu nội dung",
			description: "Từ khóa chính nên xuất hiện trong 10% đầu tiên của nội dung",
			messages: Messages{
				Pass: Literal("Từ khóa chính xuất hiện trong 10% nội dung đầu tiên."),
				Fail: Literal("Từ khóa chính không xuất hiện trong phần đầu nội dung."),
				Skip: func(d Data) string {
					if n := d.Int("wordCount"); n > 0 {
						return fmt.Sprintf("Nội dung chỉ có %d từ, quá ngắn để xét vị trí từ khóa (cần ít nhất %d từ).", n, positionMinWords)
					}
					return "Cần có nội dung và từ khóa chính để phân tích."
				},
			},
		},
		"keyword-in-end": {
			name:        "Từ khóa ở phần Kết luận",
			description: "Từ khóa chính nên xuất hiện lại ở 10% cuối cùng của nội dung",
			messages: Messages{
				Pass: Literal("Đã nhắc lại từ khóa chính ở phần kết bài."),
				Fail: Literal("Nên nhắc lại từ khóa chính trong đoạn kết bài để khẳng định lại chủ đề."),
				Skip: func(d Data) string {
					if n := d.Int("wordCount"); n > 0 {
						return fmt.Sprintf("Nội dung chỉ có %d từ, quá ngắn để xét vị trí từ khóa (cần ít nhất %d từ).", n, positionMinWords)
					}
					return "Cần có nội dung và từ khóa để phân tích."
				},
			},
		},
		"content-length": {
			name:        "Độ dài nội dung",
			description: "Nội dung nên có ít nhất 600 từ",
			messages: Messages{
				Pass: func(d Data) string {
					n := d.Int("wordCount")
					switch {
					case n >= contentBestWords:
						return fmt.Sprintf("Bản trường ca này dài %d từ. Tuyệt vời cho SEO chuyên sâu!", n)
					case n >= contentGoodWords:
						return fmt.Sprintf("Nội dung dài %d từ. Rất tốt!", n)
					}
					return fmt.Sprintf("Nội dung dài %d từ. Tạm ổn.", n)
				},
				Fail: func(d Data) string {
					return fmt.Sprintf("Nội dung chỉ có %d từ. Khuyến nghị: %d (Tạm ổn), %d (Tốt), %d (Tuyệt vời).",
						d.Int("wordCount"), contentMinWords, contentGoodWords, contentBestWords)
				},
				Skip: Literal("Không có nội dung để phân tích."),
			},
		},

		"keyword-in-subheadings": {
			name:        "Từ khóa trong tiêu đề phụ",
			description: "Từ khóa chính nên xuất hiện trong ít nhất một tiêu đề phụ (H2-H6)",
			messages: Messages{
				Pass: Literal("Đã tìm thấy từ khóa chính trong các tiêu đề phụ."),
				Fail: Literal("Hãy thêm từ khóa chính vào ít nhất một tiêu đề phụ (H2-H6)."),
				Skip: Literal("Không tìm thấy tiêu đề phụ trong nội dung."),
			},
		},
		"keyword-in-image-alt": {
			name:        "Từ khóa trong alt hình ảnh",
			description: "Từ khóa chính nên xuất hiện trong thuộc tính alt của ít nhất một hình ảnh",
			messages: Messages{
				Pass: Literal("Đã tìm thấy từ khóa chính trong alt của hình ảnh."),
				Fail: Literal("Không có hình ảnh nào có alt chứa từ khóa chính."),
				Skip: Literal("Không tìm thấy hình ảnh trong nội dung."),
			},
		},
		"keyword-density": {
			name:        "Mật độ từ khóa",
			description: "Mật độ từ khóa nên nằm trong khoảng 0.5% - 2.5%",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Mật độ từ khóa: %s%% (%d lần). Tốt!", round1(d.Float("density")), d.Int("occurrences"))
				},
				Fail: func(d Data) string {
					if d.Float("density") < densityMin {
						return fmt.Sprintf("Mật độ từ khóa quá thấp: %s%%. Nên từ %v%% đến %v%%.", round1(d.Float("density")), densityMin, densityMax)
					}
					return fmt.Sprintf("Mật độ từ khóa quá cao: %s%%. Nên từ %v%% đến %v%%.", round1(d.Float("density")), densityMin, densityMax)
				},
				Skip: Literal("Nội dung quá ngắn để phân tích mật độ từ khóa."),
			},
		},
		"url-length": {
			name:        "Độ dài URL",
			description: "URL nên ngắn gọn, không quá 75 ký tự",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("URL dài %d ký tự. Tốt!", d.Int("urlLength"))
				},
				Fail: func(d Data) string {
					return fmt.Sprintf("URL quá dài (%d ký tự). Nên dưới %d ký tự.", d.Int("urlLength"), urlMaxLength)
				},
				Skip: Literal("Không có URL/slug để phân tích."),
			},
		},
		"external-links": {
			name:        "Liên kết ngoài",
			description: "Nội dung nên có liên kết đến các trang web bên ngoài",
			messages: Messages{
				Pass: func(d Data) string {
					if d.Int("dofollowCount") > 0 {
						return fmt.Sprintf("Có %d liên kết ngoài (%d dofollow).", d.Int("externalCount"), d.Int("dofollowCount"))
					}
					return fmt.Sprintf("Có %d liên kết ngoài (tất cả đều nofollow).", d.Int("externalCount"))
				},
				Fail: Literal("Nội dung không có liên kết ngoài. Hãy thêm liên kết đến các nguồn uy tín bên ngoài."),
				Skip: Literal("Không có nội dung để phân tích."),
			},
		},
		"internal-links": {
			name:        "Liên kết nội bộ",
			description: "Nội dung nên có liên kết đến các trang nội bộ",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Có %d liên kết nội bộ.", d.Int("internalCount"))
				},
				Fail: Literal("Nội dung không có liên kết nội bộ. Hãy thêm liên kết đến các bài viết liên quan trong website."),
				Skip: Literal("Không có nội dung để phân tích."),
			},
		},

		"number-in-title": {
			name:        "Có số trong tiêu đề",
			description: "Tiêu đề có chứa số thường thu hút sự chú ý hơn",
			messages: Messages{
				Pass: Literal("Tiêu đề của bạn có chứa số. Tuyệt vời!"),
				Fail: Literal("Cân nhắc thêm số vào tiêu đề để thu hút sự chú ý hơn."),
				Skip: Literal("Không có tiêu đề để phân tích."),
			},
		},

		"table-of-contents": {
			name:        "Mục lục",
			description: "Nội dung dài nên có mục lục để dễ điều hướng",
			messages: Messages{
				Pass: Literal("Có vẻ như bạn đang sử dụng Table of Contents để chia nhỏ văn bản."),
				Fail: Literal("Nội dung dài, hãy cân nhắc thêm mục lục."),
				Skip: Literal("Nội dung chưa đủ dài để cần mục lục."),
			},
		},
		"short-paragraphs": {
			name:        "Đoạn văn ngắn",
			description: "Các đoạn văn nên ngắn gọn, dưới 120 từ",
			messages: Messages{
				Pass: Literal("Bạn đang sử dụng các đoạn văn ngắn gọn. Tốt!"),
				Fail: func(d Data) string {
					return fmt.Sprintf("Có %d đoạn văn quá dài (>%d từ). Hãy chia nhỏ hơn.", d.Int("longParagraphs"), paragraphMaxWords)
				},
				Skip: Literal("Không tìm thấy đoạn văn trong nội dung."),
			},
		},
		"has-media": {
			name:        "Có hình ảnh/video",
			description: "Nội dung nên có hình ảnh hoặc video để tăng tương tác",
			messages: Messages{
				Pass: Literal("Nội dung của bạn chứa hình ảnh và/hoặc video."),
				Fail: Literal("Hãy thêm hình ảnh hoặc video vào nội dung."),
				Skip: Literal("Không có nội dung để phân tích."),
			},
		},
		"sentence-length": {
			name:        "Độ dài câu",
			description: "Không quá 25% câu nên dài hơn 20 từ",
			messages: Messages{
				Pass: Literal("Độ dài câu phù hợp."),
				Fail: func(d Data) string {
					return fmt.Sprintf("%.0f%% câu quá dài (>%d từ). Nên dưới %.0f%%.", d.Float("percentage"), sentenceMaxWords, longSentenceMaxPct)
				},
				Skip: Literal("Không tìm thấy câu trong nội dung."),
			},
		},
		"transition-words": {
			name:        "Sử dụng từ nối",
			description: "Sử dụng các từ nối (Tuy nhiên, Vì vậy,...) giúp bài viết lưu loát hơn",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Rất tốt! Bạn đã sử dụng %d từ nối (%v%%).", d.Int("transitionCount"), d.Float("percentage"))
				},
				Fail: func(d Data) string {
					return fmt.Sprintf("Bài viết hơi khô khan (%v%% từ nối). Hãy bổ sung các từ như \"Tuy nhiên\", \"Vì vậy\", \"Ngoài ra\" để bài viết lưu loát hơn.", d.Float("percentage"))
				},
				Skip: Literal("Bài viết quá ngắn để phân tích tính lưu loát."),
			},
		},
		"question-in-headings": {
			name:        "Câu hỏi trong Tiêu đề phụ",
			description: "Sử dụng câu hỏi giúp bài viết dễ lọt vào Featured Snippet (Top 0)",
			messages: Messages{
				Pass: Literal("Tuyệt vời! Bạn có câu hỏi trong tiêu đề phụ, giúp tối ưu cho Featured Snippet."),
				Fail: Literal("Nên có ít nhất một tiêu đề phụ dạng câu hỏi (Ví dụ: \"Tại sao...?\", \"Làm thế nào...?\") để tăng khả năng lên Top 0."),
				Skip: Literal("Không tìm thấy tiêu đề phụ để phân tích."),
			},
		},
		"descriptive-anchor-text": {
			name:        "Văn bản neo mô tả",
			description: "Tránh sử dụng các từ chung chung như \"tại đây\", \"xem thêm\" làm nội dung link",
			messages: Messages{
				Pass: Literal("Các liên kết của bạn sử dụng văn bản neo mang tính mô tả."),
				Fail: Literal("Một số liên kết sử dụng từ chung chung như \"tại đây\", \"xem thêm\". Hãy thay bằng từ mô tả rõ nội dung trang đích."),
				Skip: Literal("Không tìm thấy liên kết để phân tích."),
			},
		},
		"passive-voice": {
			name:        "Câu bị động",
			description: "Hạn chế dùng câu bị động (được, bị) để bài viết rõ ràng hơn",
			messages: Messages{
				Pass: Literal("Bài viết ít dùng câu bị động."),
				Fail: Literal("Bài viết dùng nhiều câu bị động."),
				Skip: func(d Data) string {
					if _, ok := d["passiveCount"]; !ok {
						return "Không có nội dung để phân tích."
					}
					return fmt.Sprintf("Tìm thấy %d cụm bị động (được/bị) trong %d câu. Chỉ mang tính tham khảo.", d.Int("passiveCount"), d.Int("sentenceCount"))
				},
			},
		},
	},
}
