package readability

import "regexp"

var (
	// Class/id substrings that mark an element as boilerplate, unless the
	// maybe-candidate pattern rescues it.
	rxUnlikely = regexp.MustCompile(`(?i)-ad-|advert|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|foot|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	rxMaybeCandidate = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)

	// Byline detection: attribute vocabulary plus a leading "By <Name>"
	// text pattern. The capital after "by" keeps ordinary prose like
	// "By the time..." from matching.
	rxByline     = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)
	rxBylineText = regexp.MustCompile(`^[Bb]y[\s:]+\p{Lu}`)
)
