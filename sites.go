package ktorrent

// gnuboardSearchPath is the search page of gnuboard based boards.
const gnuboardSearchPath = "/bbs/search.php?sfl=wr_subject&stx=" + QueryPlaceholder

// Rules shared by the gnuboard "list-group" family of boards.
var (
	schWordTitle    = Rule{Kind: KindParentText, ParentTag: "b", ChildClass: "sch_word"}
	mediaHeadPost   = Rule{Kind: KindChildAttrByTag, ParentClass: "media-heading", ChildTag: "a", ChildAttr: "href"}
	listGroupMagnet = Rule{Kind: KindChildAttrByTag, ParentClass: "list-group", ChildTag: "a", ChildAttr: "href"}
)

// listGroupSite returns a profile for a board of the list-group family.
func listGroupSite(name, baseURL string) *Site {
	return &Site{
		Name:       name,
		BaseURL:    baseURL,
		SearchPath: gnuboardSearchPath,
		Title:      schWordTitle,
		Post:       mediaHeadPost,
		Magnet:     listGroupMagnet,
	}
}

// DefaultSites returns the built-in site profiles.
// Boards move between domains often, so most profiles ship without a base
// URL; set one in a sites file before searching.
func DefaultSites() []*Site {
	return []*Site{
		listGroupSite("torrentsir", ""),
		listGroupSite("torrentj", ""),
		listGroupSite("torrentview", ""),
		listGroupSite("torrentmobile", ""),
		listGroupSite("jujutorrent", ""),
		{
			Name:    "torrentmax",
			BaseURL: "https://torrentmax15.com",
			Title:   schWordTitle,
			Post:    mediaHeadPost,
			Magnet:  listGroupMagnet,
		},
		{
			Name:    "torrentplay",
			BaseURL: "https://torrentplay10.com",
			Title:   Rule{Kind: KindParentText, ParentTag: "a", ChildClass: "sch_word"},
			Post:    Rule{Kind: KindChildAttrByTag, ParentClass: "sch_tit", ChildTag: "a", ChildAttr: "href"},
			Magnet:  Rule{Kind: KindChildAttrByTag, ParentClass: "margnet-link", ChildTag: "a", ChildAttr: "href"},
		},
		{
			Name:    "tshare",
			BaseURL: "https://tshare.org",
			Title:   Rule{Kind: KindParentText, ParentTag: "p", ChildClass: "sch_word"},
			Post:    Rule{Kind: KindChildAttrByTag, ParentClass: "list-item-row", ChildTag: "a", ChildAttr: "href"},
			Magnet:  Rule{Kind: KindChildAttrByTag, ParentClass: "board-view-torrent-info", ChildTag: "a", ChildAttr: "href"},
		},
		{
			Name:    "ttobogo",
			BaseURL: "https://www1.ttobogo.net",
			Title:   Rule{Kind: KindTextByClass, ParentClass: "subject"},
			Post:    Rule{Kind: KindChildAttrByClass, ParentTag: "div", ChildClass: "subject", ChildAttr: "href"},
			Magnet:  Rule{Kind: KindChildAttrByClass, ParentTag: "td", ChildClass: "btn btn-blue", ChildAttr: "onclick"},
		},
		{
			Name:    "torrentqq",
			BaseURL: "https://torrentqq73.com",
			Title:   Rule{Kind: KindChildAttrByClass, ParentTag: "div", ChildClass: "subject font-13 en", ChildAttr: "title"},
			Post:    Rule{Kind: KindChildAttrByClass, ParentTag: "div", ChildClass: "subject font-13 en", ChildAttr: "href"},
			Magnet:  Rule{Kind: KindTextByTag, ParentTag: "tbody", ChildTag: "li"},
		},
		{
			Name:   "torrentsee",
			Title:  Rule{Kind: KindTextByClass, ParentClass: "tit"},
			Post:   Rule{Kind: KindChildAttrByTag, ParentClass: "tit", ChildTag: "a", ChildAttr: "href"},
			Magnet: Rule{Kind: KindParentText, ParentTag: "td", ChildClass: "bbs_btn2"},
		},
		{
			Name:   "torrenttip",
			Title:  Rule{Kind: KindTextByClass, ParentClass: "tit"},
			Post:   Rule{Kind: KindChildAttrByTag, ParentClass: "body", ChildTag: "a", ChildAttr: "href"},
			Magnet: Rule{Kind: KindTextByTag, ParentTag: "tr", ChildTag: "td"},
		},
		{
			Name:   "torrentstory",
			Title:  Rule{Kind: KindTextByClass, ParentClass: "tit"},
			Post:   Rule{Kind: KindChildAttrByTag, ParentClass: "body", ChildTag: "a", ChildAttr: "href"},
			Magnet: Rule{Kind: KindTextByTag, ParentTag: "tr", ChildTag: "td"},
		},
		{
			Name:   "torrentsome",
			Title:  Rule{Kind: KindTextByClass, ParentClass: "tit"},
			Post:   Rule{Kind: KindChildAttrByTag, ParentClass: "table", ChildTag: "a", ChildAttr: "href"},
			Magnet: Rule{Kind: KindChildAttrByClass, ParentTag: "td", ChildClass: "btn btn-info btn-sm", ChildAttr: "href"},
		},
	}
}
