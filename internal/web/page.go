package web

import (
	"embed"
	"encoding/base64"
	"html/template"

	"github.com/san-kum/paperplane/internal/flight"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type option struct {
	Value   string
	Checked bool
}

type group struct {
	Key     string
	Label   string
	Options []option
}

type flightView struct {
	Readout string
	GIF     template.URL
}

type page struct {
	Groups []group
	Result *flightView
	Error  string
}

// newPage lays out one radio group per attribute with sel checked.
func newPage(sel flight.Plane) page {
	groups := make([]group, 0, len(flight.Attributes))
	for _, a := range flight.Attributes {
		g := group{Key: a.Key(), Label: a.Label()}
		for _, v := range a.Options() {
			g.Options = append(g.Options, option{Value: v, Checked: v == sel.Get(a)})
		}
		groups = append(groups, g)
	}
	return page{Groups: groups}
}

func gifDataURL(data []byte) template.URL {
	return template.URL("data:image/gif;base64," + base64.StdEncoding.EncodeToString(data))
}
