package views

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

// RobotsTXT allows every crawler and points it at the sitemap.
func (v *Views) RobotsTXT() []byte {
	var b bytes.Buffer
	b.WriteString("User-Agent: *\n")
	b.WriteString("Allow: /\n\n")
	fmt.Fprintf(&b, "Host: %s\n", v.site.BaseURL)
	fmt.Fprintf(&b, "Sitemap: %s\n", v.site.URL("/sitemap.xml"))
	return b.Bytes()
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML lists every navigable page. A zero lastMod omits <lastmod>.
func (v *Views) SitemapXML(lastMod time.Time) ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range Routes {
		u := sitemapURL{
			Loc:        v.site.URL(p),
			ChangeFreq: "monthly",
			Priority:   "0.8",
		}
		if p == "/" {
			u.Priority = "1.0"
		}
		if !lastMod.IsZero() {
			u.LastMod = lastMod.UTC().Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, u)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("views: sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
