package goquery

import (
	"github.com/fwojciec/ktorrent"
)

var _ ktorrent.Extractor = (*Extractor)(nil)

// Extractor dispatches ktorrent rules to the matching extractor function.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and applies rule to it.
func (e *Extractor) Extract(html string, rule ktorrent.Rule) ([]string, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}
	return e.Apply(doc, rule)
}

// Apply applies rule to an already parsed document. Use it to run several
// rules against one page without parsing it again.
func (e *Extractor) Apply(doc *Document, rule ktorrent.Rule) ([]string, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	switch rule.Kind {
	case ktorrent.KindChildAttrByTag:
		return FindChildAttrByTag(doc, rule.ParentClass, rule.ChildTag, rule.ChildAttr)
	case ktorrent.KindParentText:
		return FindParentText(doc, rule.ParentTag, rule.ChildClass), nil
	case ktorrent.KindTextByClass:
		return FindAllTextByClass(doc, rule.ParentClass), nil
	case ktorrent.KindTextByTag:
		return FindAllTextByTag(doc, rule.ParentTag, rule.ChildTag), nil
	case ktorrent.KindChildAttrByClass:
		return FindChildAttrByClass(doc, rule.ParentTag, rule.ChildClass, rule.ChildAttr)
	}
	return nil, ktorrent.Errorf(ktorrent.EINVALID, "unknown rule kind %q", rule.Kind)
}
