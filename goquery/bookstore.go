package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gradeforge"
)

// Ensure BookstoreExtractor implements gradeforge.BookstoreExtractor.
var _ gradeforge.BookstoreExtractor = (*BookstoreExtractor)(nil)

// BookstoreExtractor decodes bookstore course-material pages.
type BookstoreExtractor struct {
	// BaseURL resolves site-relative links and images.
	BaseURL string
}

// NewBookstoreExtractor creates a bookstore extractor for the portal origin.
func NewBookstoreExtractor() *BookstoreExtractor {
	return &BookstoreExtractor{BaseURL: gradeforge.DefaultBaseURL}
}

// ExtractBooks returns one book per entry of the material list.
func (e *BookstoreExtractor) ExtractBooks(doc *gradeforge.Document) ([]*gradeforge.Book, error) {
	d, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	entries := d.Find("div.book-list > div")
	books := make([]*gradeforge.Book, 0, entries.Length())
	for i := 0; i < entries.Length(); i++ {
		fields := gradeforge.Fields{}
		b, err := e.decodeBook(entries.Eq(i), fields)
		if err != nil {
			return nil, &gradeforge.RecordError{Document: doc.Name, Record: i, Fields: fields, Err: err}
		}
		books = append(books, b)
	}
	return books, nil
}

func (e *BookstoreExtractor) decodeBook(entry *goquery.Selection, fields gradeforge.Fields) (*gradeforge.Book, error) {
	parts := entry.ChildrenFiltered("div")
	if parts.Length() < 3 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "book entry has %d blocks; want at least 3", parts.Length())
	}

	b := &gradeforge.Book{}
	if src, ok := parts.Eq(1).Find("a > img").Attr("src"); ok {
		b.Image = gradeforge.AbsoluteLink(e.BaseURL, src)
	}
	fields["image"] = b.Image

	main := parts.Eq(2)
	anchor := main.ChildrenFiltered("h1").ChildrenFiltered("a").First()
	if anchor.Length() == 0 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "book entry has no title link")
	}
	b.Link = gradeforge.AbsoluteLink(e.BaseURL, anchor.AttrOr("href", ""))
	b.Title = cleanText(anchor.AttrOr("title", anchor.Text()))
	fields["title"], fields["link"] = b.Title, b.Link

	h2 := main.ChildrenFiltered("h2")
	required := h2.ChildrenFiltered("span.recommendBookType")
	if required.Length() == 0 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "book %q has no requirement label", b.Title)
	}
	b.Required = strings.ToLower(cleanText(required.First().Text()))
	b.Author = cleanText(strings.Replace(h2.ChildrenFiltered("span").ChildrenFiltered("i").First().Text(), "By ", "", 1))
	fields["required"], fields["author"] = b.Required, b.Author

	details := main.ChildrenFiltered("ul").ChildrenFiltered("li").ChildrenFiltered("strong")
	if details.Length() != 3 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "book %q has %d detail lines; want edition, publisher and ISBN", b.Title, details.Length())
	}
	b.Edition = cleanText(tailText(details.Get(0)))
	b.Publisher = cleanText(tailText(details.Get(1)))
	b.ISBN = cleanText(tailText(details.Get(2)))
	fields["edition"], fields["publisher"], fields["isbn"] = b.Edition, b.Publisher, b.ISBN

	if parts.Length() > 3 {
		parts.Eq(3).Find("div.selectBookCont li[title]").Each(func(_ int, li *goquery.Selection) {
			price := cleanText(li.ChildrenFiltered("span").First().Text())
			key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(li.AttrOr("title", ""))), " ", "-")
			fields[key] = price
			switch key {
			case "buy-new":
				b.BuyNew = price
			case "buy-used":
				b.BuyUsed = price
			case "rent-new":
				b.RentNew = price
			case "rent-used":
				b.RentUsed = price
			}
		})
	}
	return b, nil
}
