// gen is a codegen cmd for generating numeric builder types from template.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Numeric describes one numeric column type fed to the template.
type Numeric struct {
	Name  string // snake_case identifier, e.g. "tiny_int"
	Key   string // abstract key, e.g. "TINYINT"
	Float bool   // floating-point types also get a Decimals option
}

func main() {
	buf, err := os.ReadFile("internal/numeric.tmpl")
	if err != nil {
		log.Fatal("reading template file:", err)
	}
	titleCaser := cases.Title(language.English)
	numTmpl := template.Must(template.New("numeric").
		Funcs(template.FuncMap{
			"title":      titleCaser.String,
			"hasPrefix":  strings.HasPrefix,
			"toUpper":    strings.ToUpper,
			"camelize":   func(s string) string { return inflect.Camelize(s) },
			"lowerCamel": func(s string) string { return inflect.CamelizeDownFirst(s) },
		}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	if err = numTmpl.Execute(b, struct {
		Numerics []Numeric
	}{
		Numerics: []Numeric{
			{Name: "tiny_int", Key: "TINYINT"},
			{Name: "small_int", Key: "SMALLINT"},
			{Name: "medium_int", Key: "MEDIUMINT"},
			{Name: "integer", Key: "INTEGER"},
			{Name: "big_int", Key: "BIGINT"},
			{Name: "float", Key: "FLOAT", Float: true},
			{Name: "double", Key: "DOUBLE PRECISION", Float: true},
			{Name: "real", Key: "REAL", Float: true},
		},
	}); err != nil {
		log.Fatal("executing template:", err)
	}
	if buf, err = format.Source(b.Bytes()); err != nil {
		log.Fatal("formatting output:", err)
	}
	if err = os.WriteFile("numeric.go", buf, 0o644); err != nil {
		log.Fatal("writing go file:", err)
	}
}
