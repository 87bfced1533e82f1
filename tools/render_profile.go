// render_profile renders a stored résumé document to a standalone HTML page.
//
//	go run ./tools -in resume.json -variant modern -out resume.html
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/render"
)

func main() {
	in := flag.String("in", "resume.json", "résumé document to render")
	out := flag.String("out", "", "output file (default stdout)")
	variant := flag.String("variant", "classic", "layout: classic, modern or minimal")
	lang := flag.String("lang", "en", "heading language")
	expand := flag.Bool("expand-skills", false, "expand bare skill keywords into sentences")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	if err := model.ValidateJSON(b); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	var doc model.Resume
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	v, err := render.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	opts := []render.Option{render.WithLabels(render.LabelsFor(*lang))}
	if *expand {
		opts = append(opts, render.WithSkillExpansion())
	}
	html, err := render.NewRenderer(opts...).RenderHTML(model.Sanitize(doc), v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	if *out == "" {
		_, _ = os.Stdout.Write(html)
		return
	}
	if err := os.WriteFile(*out, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
