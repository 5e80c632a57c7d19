package scholarseeker

import (
	"fmt"
	"regexp"
	"strconv"
)

// urlPattern is greedy up to the first whitespace character, so trailing
// punctuation attached to a URL becomes part of the link. That matches how
// the responses actually format their sources and is intentional.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// citationPattern matches a bare [n] marker, or an anchor we already
// emitted around one. Matching the full anchor lets LinkifyCitations leave
// previously linked markers alone when post-processing is chained.
var citationPattern = regexp.MustCompile(`<a href="[^"]*" target="_blank">\[\d+\]</a>|\[(\d+)\]`)

// LinkifyURLs wraps every bare URL in the text as a markdown link whose
// label and target are the matched substring, verbatim. Pure function;
// apply exactly once per raw response, since already-linked text would be
// wrapped again.
func LinkifyURLs(text string) string {
	return urlPattern.ReplaceAllStringFunc(text, func(url string) string {
		return fmt.Sprintf("[%s](%s)", url, url)
	})
}

// LinkifyCitations replaces citation markers like [1], [2] with anchors
// into the citation list. Marker [n] refers to citations[n-1]; markers
// whose index falls outside the list (including [0]) are left unchanged.
func LinkifyCitations(text string, citations []string) string {
	return citationPattern.ReplaceAllStringFunc(text, func(marker string) string {
		if marker[0] == '<' {
			// already an anchor from a previous pass
			return marker
		}
		n, err := strconv.Atoi(marker[1 : len(marker)-1])
		if err != nil {
			// overflow counts as out of range
			return marker
		}
		index := n - 1
		if index < 0 || index >= len(citations) {
			return marker
		}
		return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, citations[index], marker)
	})
}
