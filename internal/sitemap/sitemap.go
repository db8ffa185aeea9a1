package sitemap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// TextFileName is the plain text sitemap file name.
	TextFileName = "sitemap.txt"

	// XMLFileName is the XML sitemap file name.
	XMLFileName = "sitemap.xml"

	// xmlns is the sitemaps.org protocol namespace.
	xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// Entry is one sitemap entry: a crawled page and when it was last seen.
type Entry struct {
	// Loc is the absolute page URL.
	Loc string

	// LastMod is when the page was last crawled successfully.
	// Zero omits the lastmod element.
	LastMod time.Time
}

// WriteText writes the plain text sitemap: one URL per line.
func WriteText(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.Loc); err != nil {
			return fmt.Errorf("failed to write sitemap entry: %w", err)
		}
	}
	return nil
}

// urlset is the root element of an XML sitemap.
type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

// xmlURL is one url element of an XML sitemap.
type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteXML writes the sitemaps.org urlset format.
func WriteXML(w io.Writer, entries []Entry) error {
	set := urlset{
		Xmlns: xmlns,
		URLs:  make([]xmlURL, 0, len(entries)),
	}

	for _, entry := range entries {
		priority, changefreq := classify(entry.Loc)
		u := xmlURL{
			Loc:        entry.Loc,
			ChangeFreq: changefreq,
			Priority:   priority,
		}
		if !entry.LastMod.IsZero() {
			u.LastMod = entry.LastMod.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}

	// Encoder does not emit a trailing newline
	_, err := io.WriteString(w, "\n")
	return err
}

// classify derives priority and change frequency from the URL path.
// The root page outranks everything; section indexes and dated content
// under /blog and /news change often; the long tail changes rarely.
func classify(loc string) (priority, changefreq string) {
	u, err := url.Parse(loc)
	if err != nil {
		return "0.5", "monthly"
	}

	switch {
	case u.Path == "" || u.Path == "/":
		return "1.0", "daily"
	case strings.HasPrefix(u.Path, "/blog") || strings.HasPrefix(u.Path, "/news"):
		return "0.8", "weekly"
	default:
		return "0.5", "monthly"
	}
}

// ExportAll writes both sitemap formats into dir and returns the paths
// of the files written. The two files are independent, so they are
// rendered and written concurrently.
func ExportAll(ctx context.Context, dir string, entries []Entry) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create sitemap directory: %w", err)
	}

	textPath := filepath.Join(dir, TextFileName)
	xmlPath := filepath.Join(dir, XMLFileName)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeFile(textPath, entries, WriteText)
	})
	g.Go(func() error {
		return writeFile(xmlPath, entries, WriteXML)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return []string{textPath, xmlPath}, nil
}

// writeFile renders a sitemap into memory and writes it in one shot,
// so a failed render never leaves a truncated file behind.
func writeFile(path string, entries []Entry, render func(io.Writer, []Entry) error) error {
	var buf bytes.Buffer
	if err := render(&buf, entries); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
