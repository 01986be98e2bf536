package portfolio

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// handleSitemap lists the home page and every published section page.
func (a *App) handleSitemap(c echo.Context) error {
	data := a.Cache.Payload()
	urls := []sitemapURL{
		{Loc: strings.TrimSuffix(a.Config.URL, "/") + "/"},
	}
	for _, sec := range data.Sections {
		urls = append(urls, sitemapURL{Loc: BuildURL(a.Config.URL, "sections", sec.Slug)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
