// Command bcftab converts parsed BCF project data into delimited text
// or a spreadsheet workbook.
//
// Input files are JSON documents holding the parsed project graph
// produced by a BCF parsing front end: one ProjectFile object or an
// array of them per document.
//
//	bcftab -format xlsx -fields @selection.yaml -o report.xlsx project.json
//	bcftab -format csv -fields title,status,commentText project.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bjaus/bcftab"
)

func main() {
	var (
		formatFlag = flag.String("format", "csv", "output format: csv or xlsx")
		fieldsFlag = flag.String("fields", "", "comma-separated field ids, or @file.yaml for a selection document (default: all discovered fields)")
		outFlag    = flag.String("o", "", "output file (default stdout)")
		listFlag   = flag.Bool("list-fields", false, "print the field vocabulary and exit")
	)
	flag.Parse()

	if *listFlag {
		listFields()
		return
	}

	format, err := bcftab.ParseFormat(*formatFlag)
	if err != nil {
		log.Fatalf("Bad -format value: %v", err)
	}

	if flag.NArg() == 0 {
		log.Fatalf("No input files: pass one or more parsed-BCF JSON documents")
	}

	files, err := loadProjectFiles(flag.Args())
	if err != nil {
		log.Fatalf("Loading input: %v", err)
	}
	log.Debugf("Loaded %d project file(s)", len(files))

	selection, err := resolveSelection(*fieldsFlag, files)
	if err != nil {
		log.Fatalf("Resolving field selection: %v", err)
	}

	out, err := bcftab.Marshal(format, files, selection)
	switch {
	case errors.Is(err, bcftab.ErrNoData):
		log.Fatalf("Nothing to export: no project files were loaded")
	case errors.Is(err, bcftab.ErrNoTopics):
		log.Fatalf("Nothing to export: the loaded files contain no topics")
	case err != nil:
		log.Fatalf("Export failed: %v", err)
	}

	if *outFlag == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("Writing output: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outFlag, out, 0o644); err != nil {
		log.Fatalf("Writing %s: %v", *outFlag, err)
	}
	log.Infof("Wrote %d bytes to %s", len(out), *outFlag)
}

// loadProjectFiles reads each path as either a single ProjectFile
// object or an array of them.
func loadProjectFiles(paths []string) ([]bcftab.ProjectFile, error) {
	var files []bcftab.ProjectFile
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var many []bcftab.ProjectFile
		if err := json.Unmarshal(data, &many); err == nil {
			files = append(files, many...)
			continue
		}
		var one bcftab.ProjectFile
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, one)
	}
	return files, nil
}

func resolveSelection(spec string, files []bcftab.ProjectFile) ([]bcftab.FieldID, error) {
	if spec == "" {
		avail := bcftab.DiscoverFields(files)
		sel := append([]bcftab.FieldID{}, avail.Metadata...)
		sel = append(sel, avail.Topic...)
		sel = append(sel, avail.Comment...)
		return sel, nil
	}
	if name, ok := strings.CutPrefix(spec, "@"); ok {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return bcftab.ParseSelection(data)
	}
	var sel []bcftab.FieldID
	for _, s := range strings.Split(spec, ",") {
		sel = append(sel, bcftab.FieldID(strings.TrimSpace(s)))
	}
	return sel, nil
}

func listFields() {
	groups := []struct {
		name   string
		fields []bcftab.FieldID
	}{
		{"Topic", bcftab.TopicFields()},
		{"Comment", bcftab.CommentFields()},
		{"Metadata", bcftab.MetadataFields()},
		{"Camera", bcftab.CameraFields()},
	}
	for _, g := range groups {
		fmt.Println(g.name + ":")
		for _, f := range g.fields {
			fmt.Printf("  %-22s %s\n", string(f), f.Label())
		}
	}
}
