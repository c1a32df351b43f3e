package distill

import "encoding/json"

// Result is the wire form of an extraction as returned across the FFI
// boundary: an Article plus the identifier the caller later passes back to
// release the buffer. Field declaration order is the wire field order.
type Result struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Byline      *string `json:"byline"`
	Excerpt     string  `json:"excerpt"`
	Content     string  `json:"content"`
	TextContent string  `json:"textContent"`
	Length      int     `json:"length"`
	SiteName    *string `json:"siteName"`
}

// NewResult wraps an article in a Result with the given identifier.
// An empty byline or site name becomes JSON null.
func NewResult(id string, a *Article) *Result {
	r := &Result{
		ID:          id,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		TextContent: a.TextContent,
		Length:      a.Length,
	}
	if a.Byline != "" {
		byline := a.Byline
		r.Byline = &byline
	}
	if a.SiteName != "" {
		siteName := a.SiteName
		r.SiteName = &siteName
	}
	return r
}

// JSON encodes the result as UTF-8 JSON. Identical results encode to
// identical bytes.
func (r *Result) JSON() ([]byte, error) {
	buf, err := json.Marshal(r)
	if err != nil {
		return nil, Errorf(EINTERNAL, "encode result: %v", err)
	}
	return buf, nil
}
