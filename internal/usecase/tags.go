package usecase

import (
	"encoding/json"
	"strings"
)

// TagList is the tagged-variant input type for idea tags. Clients may
// send tags as a single comma-delimited string, as a JSON array of
// strings, or as anything else; one shared rule resolves the three
// cases:
//
//	string  -> split on comma, trim segments, drop empties
//	array   -> stored as-is
//	other   -> empty list
type TagList []string

// UnmarshalJSON resolves the variant shapes into the canonical form.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*t = splitTags(asString)

		return nil
	}

	// An already-structured array of strings passes through verbatim;
	// only the delimited-string form is trimmed.
	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err == nil && asSlice != nil {
		*t = TagList(asSlice)

		return nil
	}

	// Any other shape (number, object, null, mixed array) normalizes
	// to an empty list rather than failing the request.
	*t = TagList{}

	return nil
}

func splitTags(raw string) TagList {
	tags := TagList{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}
