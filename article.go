package distill

// Article holds the readable content extracted from an HTML document.
type Article struct {
	// Title is the page title, from <title> or the first heading.
	Title string

	// Byline is the author attribution. Empty when none was found.
	Byline string

	// Excerpt is a short plain-text summary taken from the leading content.
	Excerpt string

	// Content is the main content as a clean HTML fragment.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Content string

	// TextContent is the plain text of Content with markup stripped.
	TextContent string

	// Length is the length of TextContent in runes.
	Length int

	// SiteName is the publisher name. Empty when none was found.
	SiteName string
}
