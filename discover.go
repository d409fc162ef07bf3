package bcftab

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldAvailability lists the fields that actually carry data somewhere
// in a scanned set, grouped the way selection menus group them.
// Metadata fields are always derivable and therefore always available.
// Camera fields report under Topic, where they render.
type FieldAvailability struct {
	Topic    []FieldID
	Comment  []FieldID
	Metadata []FieldID
}

// DiscoverFields scans every topic, comment, and viewpoint across all
// files and reports which fields have at least one non-empty value.
// The result is the menu a caller may select from; per-row population
// stays governed by the applicability table regardless of availability.
func DiscoverFields(files []ProjectFile) FieldAvailability {
	avail := FieldAvailability{Metadata: MetadataFields()}
	for _, f := range topicFields {
		if anyTopicHas(files, f) {
			avail.Topic = append(avail.Topic, f)
		}
	}
	for _, f := range cameraFields {
		if anyViewpointHas(files, f) {
			avail.Topic = append(avail.Topic, f)
		}
	}
	for _, f := range commentFields {
		if anyCommentHas(files, f) {
			avail.Comment = append(avail.Comment, f)
		}
	}
	return avail
}

func anyTopicHas(files []ProjectFile, f FieldID) bool {
	for fi := range files {
		file := &files[fi]
		for ti := range file.Topics {
			rc := rowContext{typ: RowTopic, file: file, topic: &file.Topics[ti], topicNumber: ti + 1}
			if resolveValue(f, &rc, delimitedOptions) != "" {
				return true
			}
		}
	}
	return false
}

func anyCommentHas(files []ProjectFile, f FieldID) bool {
	for fi := range files {
		file := &files[fi]
		for ti := range file.Topics {
			topic := &file.Topics[ti]
			for ci := range topic.Comments {
				rc := rowContext{
					typ:           RowComment,
					file:          file,
					topic:         topic,
					comment:       &topic.Comments[ci],
					commentNumber: ci + 1,
				}
				if resolveValue(f, &rc, delimitedOptions) != "" {
					return true
				}
			}
		}
	}
	return false
}

func anyViewpointHas(files []ProjectFile, f FieldID) bool {
	for fi := range files {
		file := &files[fi]
		for ti := range file.Topics {
			topic := &file.Topics[ti]
			for vi := range topic.Viewpoints {
				rc := rowContext{
					typ:             RowViewpoint,
					file:            file,
					topic:           topic,
					viewpoint:       &topic.Viewpoints[vi],
					viewpointNumber: vi + 1,
				}
				if resolveValue(f, &rc, delimitedOptions) != "" {
					return true
				}
			}
		}
	}
	return false
}

// Custom-field categories.
const (
	CategoryAttributes     = "Attributes"
	CategoryVendor         = "Vendor Extensions"
	CategoryCustomElements = "Custom Elements"
	CategoryOther          = "Other Custom Fields"
)

// CustomField accumulates everything observed for one extension field.
type CustomField struct {
	Name        string
	DisplayName string
	Category    string
	Values      []string // distinct observed values, first-seen order
	Count       int      // total non-empty occurrences

	seen map[string]struct{}
}

// CustomFieldRegistry catalogs extension fields found outside the base
// schema, keyed by raw field name. It is informational: neither
// serializer consumes it, and callers may keep one across sessions for
// display purposes.
type CustomFieldRegistry struct {
	Topic   map[string]*CustomField
	Comment map[string]*CustomField
}

// DiscoverCustomFields inspects every record's custom-field mapping and
// accumulates the non-empty entries.
func DiscoverCustomFields(files []ProjectFile) *CustomFieldRegistry {
	reg := &CustomFieldRegistry{
		Topic:   make(map[string]*CustomField),
		Comment: make(map[string]*CustomField),
	}
	for fi := range files {
		for ti := range files[fi].Topics {
			topic := &files[fi].Topics[ti]
			accumulateCustom(reg.Topic, topic.Custom)
			for ci := range topic.Comments {
				accumulateCustom(reg.Comment, topic.Comments[ci].Custom)
			}
		}
	}
	return reg
}

func accumulateCustom(into map[string]*CustomField, custom map[string]string) {
	for name, value := range custom {
		if strings.TrimSpace(value) == "" {
			continue
		}
		cf := into[name]
		if cf == nil {
			cf = &CustomField{
				Name:        name,
				DisplayName: customDisplayName(name),
				Category:    customCategory(name),
				seen:        make(map[string]struct{}),
			}
			into[name] = cf
		}
		cf.Count++
		if _, ok := cf.seen[value]; !ok {
			cf.seen[value] = struct{}{}
			cf.Values = append(cf.Values, value)
		}
	}
}

var titleCaser = cases.Title(language.English)

// customDisplayName derives a human label from a raw extension field
// name: source prefixes and the attr/element structural markers drop
// out, underscores become spaces, words are title-cased.
func customDisplayName(name string) string {
	s := strings.TrimPrefix(name, "topic_")
	s = strings.TrimPrefix(s, "comment_")
	var words []string
	for _, w := range strings.Split(s, "_") {
		if w == "" || w == "attr" || w == "element" {
			continue
		}
		words = append(words, w)
	}
	return titleCaser.String(strings.Join(words, " "))
}

// customCategory classifies an extension field by markers in its name.
// Namespace markers win over element markers, which win over attribute
// markers; everything else is Other.
func customCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "namespace"):
		return CategoryVendor
	case strings.Contains(lower, "element"):
		return CategoryCustomElements
	case strings.Contains(lower, "attr"):
		return CategoryAttributes
	default:
		return CategoryOther
	}
}
