package bcftab_test

import "github.com/bjaus/bcftab"

func fp(v float64) *float64 { return &v }

// leakSelection is the selection the end-to-end fixtures are exercised
// with: one topic field, one comment field, one camera field.
func leakSelection() []bcftab.FieldID {
	return []bcftab.FieldID{
		bcftab.FieldTitle,
		bcftab.FieldStatus,
		bcftab.FieldCommentText,
		bcftab.FieldCameraViewPointX,
	}
}

// leakFile is the canonical end-to-end fixture: one topic with two
// out-of-order comments and one primary viewpoint.
func leakFile() bcftab.ProjectFile {
	return bcftab.ProjectFile{
		Filename:    "roof.bcf",
		ProjectName: "Roof Renovation",
		Version:     "2.1",
		Topics: []bcftab.Topic{{
			GUID:   "topic-1",
			Title:  "Leak in roof",
			Status: "Open",
			Comments: []bcftab.Comment{
				{Date: "2024-01-02", Author: "alex", Text: "Still leaking"},
				{Date: "2024-01-01", Author: "sam", Text: "Found the leak"},
			},
			Viewpoints: []bcftab.Viewpoint{{
				GUID:            "vp-1",
				File:            "viewpoint.bcfv",
				CameraViewPoint: bcftab.Vector{X: fp(1.23456), Y: fp(0)},
			}},
		}},
	}
}

// multiFile holds two project files with two topics each, for numbering
// and metadata tests.
func multiFile() []bcftab.ProjectFile {
	return []bcftab.ProjectFile{
		{
			Filename:    "a.bcf",
			ProjectName: "Alpha",
			Version:     "2.1",
			Topics: []bcftab.Topic{
				{GUID: "a-1", Title: "First"},
				{GUID: "a-2", Title: "Second", Comments: []bcftab.Comment{
					{Date: "2024-03-01", Author: "kim", Text: "note"},
				}},
			},
		},
		{
			Filename:    "b.bcf",
			ProjectName: "Beta",
			Version:     "3.0",
			Topics: []bcftab.Topic{
				{GUID: "b-1", Title: "Third"},
				{GUID: "b-2", Title: "Fourth"},
			},
		},
	}
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
