package roposo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"roposo-sync/models"
)

var (
	// containerClassRegexp marks a div as a candidate product container.
	containerClassRegexp = regexp.MustCompile(`(?i)product|card|grid-item`)
	// titleClassRegexp marks the heading or anchor that carries the name.
	titleClassRegexp = regexp.MustCompile(`(?i)title|name|link`)
	// currencyRegexp finds the first text fragment that looks like a price.
	currencyRegexp = regexp.MustCompile(`Rs\.|₹|\$`)
)

const titleSelector = "h1, h2, h3, h4, h5, h6, a"

// fieldLocator finds one field inside a container. ok is false when the
// field is missing, which drops the whole container.
type fieldLocator func(container *goquery.Selection, origin string) (value string, ok bool)

// fieldLocators holds the heuristics for every required field.
var fieldLocators = struct {
	title, link, image, price fieldLocator
}{
	title: locateTitle,
	link:  locateLink,
	image: locateImage,
	price: locatePrice,
}

// Extract parses body and returns one RawProduct per container that has all
// four fields, in document order, along with the number of containers seen.
func Extract(body, origin string) ([]*models.RawProduct, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("extract: parse html: %w", err)
	}

	containers := Containers(doc)

	var products []*models.RawProduct
	containers.Each(func(_ int, c *goquery.Selection) {
		if p, ok := extractProduct(c, origin); ok {
			products = append(products, p)
		}
	})
	return products, containers.Length(), nil
}

// Containers returns every div whose class attribute mentions product, card
// or grid-item, case-insensitively. Nested matches are all returned.
func Containers(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return containerClassRegexp.MatchString(class)
	})
}

func extractProduct(c *goquery.Selection, origin string) (*models.RawProduct, bool) {
	name, ok := fieldLocators.title(c, origin)
	if !ok {
		return nil, false
	}
	link, ok := fieldLocators.link(c, origin)
	if !ok {
		return nil, false
	}
	image, ok := fieldLocators.image(c, origin)
	if !ok {
		return nil, false
	}
	price, ok := fieldLocators.price(c, origin)
	if !ok {
		return nil, false
	}
	return &models.RawProduct{
		Name:      name,
		PriceText: price,
		ImageURL:  image,
		SourceURL: link,
	}, true
}

func locateTitle(c *goquery.Selection, _ string) (string, bool) {
	title := c.Find(titleSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return titleClassRegexp.MatchString(class)
	}).First()
	if title.Length() == 0 {
		return "", false
	}
	name := strings.TrimSpace(title.Text())
	return name, name != ""
}

func locateLink(c *goquery.Selection, origin string) (string, bool) {
	href, ok := c.Find("a[href]").First().Attr("href")
	href = strings.TrimSpace(href)
	if !ok || href == "" {
		return "", false
	}
	return ResolveLink(href, origin), true
}

func locateImage(c *goquery.Selection, _ string) (string, bool) {
	src, ok := c.Find("img[src]").First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return "", false
	}
	return ResolveImage(strings.TrimSpace(src)), true
}

func locatePrice(c *goquery.Selection, _ string) (string, bool) {
	for _, n := range c.Nodes {
		if text, ok := firstMatchingText(n); ok {
			return text, true
		}
	}
	return "", false
}

// firstMatchingText walks n depth-first and returns the first text node that
// contains a currency marker.
func firstMatchingText(n *html.Node) (string, bool) {
	if n.Type == html.TextNode {
		if currencyRegexp.MatchString(n.Data) {
			return n.Data, true
		}
		return "", false
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if text, ok := firstMatchingText(child); ok {
			return text, true
		}
	}
	return "", false
}

// ResolveLink joins site-relative hrefs onto origin and leaves others as-is.
func ResolveLink(href, origin string) string {
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return href
}

// ResolveImage turns a protocol-relative or bare src into an https URL.
func ResolveImage(src string) string {
	src = strings.TrimPrefix(src, "//")
	if !strings.HasPrefix(src, "http") {
		src = "https://" + src
	}
	return src
}
