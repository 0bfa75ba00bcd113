// Package taggable shares tagging behavior between unrelated types by embedding.
//
// Tags plays the role of a mixin: Post and Quotes embed it and gain AddTag,
// List and Count without inheriting from a common base.
package taggable

import (
	"fmt"
	"strings"
)

// Tags is an embeddable, ordered list of tags.
type Tags struct {
	tags []string
}

// AddTag appends tag after trimming surrounding spaces. Blank tags are ignored.
func (t *Tags) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	t.tags = append(t.tags, tag)
}

// List returns a copy of the tags in insertion order.
func (t *Tags) List() []string { return append([]string(nil), t.tags...) }

// Count returns the number of tags.
func (t *Tags) Count() int { return len(t.tags) }

// Post is an article with an author and tags.
type Post struct {
	Tags

	Title  string
	Author string
}

// NewPost returns an untagged post.
func NewPost(title, author string) *Post { return &Post{Title: title, Author: author} }

// Summary renders title, author and tags.
func (p *Post) Summary() string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nTags: %s", p.Title, p.Author, strings.Join(p.tags, ", "))
}

// Quotes is a tagged collection of quotes.
type Quotes struct {
	Tags

	quotes []string
}

// AddQuote appends a quote.
func (q *Quotes) AddQuote(quote string) { q.quotes = append(q.quotes, quote) }

// All returns a copy of the quotes in insertion order.
func (q *Quotes) All() []string { return append([]string(nil), q.quotes...) }
