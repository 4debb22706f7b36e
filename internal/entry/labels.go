package entry

import "strings"

// Labels returns the categories and #hashtags of a description's trailing
// category block, in block order. Within one comma-separated item, text before
// the first '#' is a category and each '#...' run is a hashtag:
//
//	"Run (fitness #5k #morning run, outdoors)" -> [fitness outdoors], [#5k #morning run]
func Labels(desc string) (categories, hashtags []string) {
	cb, ok := SplitCategoryBlock(desc)
	if !ok {
		return nil, nil
	}

	for _, item := range strings.Split(cb.Inside, ",") {
		parts := strings.Split(item, "#")
		if c := strings.TrimSpace(parts[0]); c != "" {
			categories = append(categories, c)
		}
		for _, h := range parts[1:] {
			if h = strings.TrimSpace(h); h != "" {
				hashtags = append(hashtags, "#"+h)
			}
		}
	}
	return categories, hashtags
}
