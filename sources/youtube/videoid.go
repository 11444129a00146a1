package youtube

import "regexp"

var videoURLPattern = regexp.MustCompile(`https://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/shorts/)(?P<id>[a-zA-Z0-9_-]+)`)

// VideoID extracts the video identifier from a single YouTube URL.
func VideoID(url string) (string, bool) {
	captures := videoURLPattern.FindStringSubmatch(url)
	if captures == nil {
		return "", false
	}
	return captures[1], true
}

// VideoIDs extracts every video identifier linked in a message text, in
// order of appearance.
func VideoIDs(text string) []string {
	var ids []string
	for _, captures := range videoURLPattern.FindAllStringSubmatch(text, -1) {
		ids = append(ids, captures[1])
	}
	return ids
}
