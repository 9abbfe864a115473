package events

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	totalPattern = regexp.MustCompile(`Total Results \((\d+)\)`)
	datePattern  = regexp.MustCompile(`((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:[-\x{2013}]\d{1,2})?,?\s*\d{4})`)
	spacePattern = regexp.MustCompile(`\s+`)
	sentenceEnd  = regexp.MustCompile(`\.\s`)
)

// maxDateText bounds how much of the text after a heading is searched for a date.
const maxDateText = 100

// sectionEnd closes the event listing section on both page types.
const sectionEnd = "eventicalendar"

// Event is one entry of an event listing page.
type Event struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Date  string `json:"date"`
}

// Feed is the parsed content of one event listing page.
type Feed struct {
	TotalResult int     `json:"totalResult"`
	Events      []Event `json:"events"`
}

// candidate is an h4 inside the listing section and the text that follows
// it up to the next h4.
type candidate struct {
	heading *goquery.Selection
	after   strings.Builder
}

// Parse extracts the reported total and the listed events from an event page.
// Only headings between the section title of t and the calendar widget are
// read. Relative links are resolved against https://domain.
func Parse(r io.Reader, domain string, t Type) (*Feed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse event page: %w", err)
	}

	feed := &Feed{Events: []Event{}}
	if m := totalPattern.FindStringSubmatch(collapse(doc.Text())); m != nil {
		feed.TotalResult, _ = strconv.Atoi(m[1])
	}

	for _, c := range sectionHeadings(doc, strings.ToLower(t.marker())) {
		a := c.heading.Find("a[href]").First()
		href, _ := a.Attr("href")
		title := strings.TrimSpace(a.Text())
		if title == "" || !strings.Contains(href, "/events/") {
			continue
		}

		link := href
		if !strings.HasPrefix(href, "http") {
			link = "https://" + domain + href
		}
		feed.Events = append(feed.Events, Event{Title: title, Link: link, Date: eventDate(c.after.String())})
	}

	return feed, nil
}

// sectionHeadings walks the document in order. Headings before the marker
// or after the calendar widget are ignored. Each heading collects the text
// that follows it, whichever container that text sits in.
func sectionHeadings(doc *goquery.Document, marker string) []*candidate {
	var (
		found   []*candidate
		cur     *candidate
		inside  bool
		stopped bool
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for ; n != nil && !stopped; n = n.NextSibling {
			switch n.Type {
			case html.TextNode:
				text := strings.ToLower(n.Data)
				switch {
				case !inside:
					inside = strings.Contains(text, marker)
				case strings.Contains(text, sectionEnd):
					stopped = true
				case cur != nil:
					cur.after.WriteString(" ")
					cur.after.WriteString(n.Data)
				}
				continue
			case html.ElementNode:
				if n.Data == "script" || n.Data == "style" {
					continue
				}
				if inside && hasAttrText(n, sectionEnd) {
					stopped = true
					continue
				}
				if !inside && hasAttrText(n, marker) {
					inside = true
				}
				if inside && n.Data == "h4" {
					cur = &candidate{heading: doc.FindNodes(n)}
					found = append(found, cur)
					continue
				}
			}
			walk(n.FirstChild)
		}
	}
	walk(doc.Get(0))

	return found
}

func hasAttrText(n *html.Node, needle string) bool {
	for _, a := range n.Attr {
		if strings.Contains(strings.ToLower(a.Val), needle) {
			return true
		}
	}
	return false
}

// eventDate looks for a date in the text following a heading, stopping at
// the first sentence end.
func eventDate(after string) string {
	text := sentenceEnd.Split(collapse(after), 2)[0]
	if runes := []rune(text); len(runes) > maxDateText {
		text = string(runes[:maxDateText])
	}
	if m := datePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func collapse(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
