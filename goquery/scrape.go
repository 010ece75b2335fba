package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ktorrent"
	"golang.org/x/net/html"
)

// FindChildAttrByTag collects, for every element whose class attribute
// contains the token parentClass, the childAttr attribute of its first
// descendant (pre-order) with tag childTag.
//
//	<li class="parentClass">
//	    <i class="fa"></i>
//	    <childTag childAttr="value">...</childTag>
//	</li>
//
// The extractor is strict: a matched parent without such a descendant fails
// with EMISSINGNODE, a descendant without the attribute with EMISSINGATTR.
// No values are returned on failure.
func FindChildAttrByTag(doc *Document, parentClass, childTag, childAttr string) ([]string, error) {
	var values []string
	var err error
	elements(doc).FilterFunction(withClass(parentClass)).EachWithBreak(func(i int, parent *goquery.Selection) bool {
		child := firstDescendant(parent, childTag)
		if child.Length() == 0 {
			err = ktorrent.Errorf(ktorrent.EMISSINGNODE,
				"element %d with class %q has no <%s> descendant", i, parentClass, childTag)
			return false
		}
		val, ok := child.Attr(attrName(childAttr))
		if !ok {
			err = ktorrent.Errorf(ktorrent.EMISSINGATTR,
				"<%s> under element %d with class %q has no %q attribute", childTag, i, parentClass, childAttr)
			return false
		}
		values = append(values, val)
		return true
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// FindParentText collects the full text of every parentTag element, once for
// each attribute of a direct child whose value equals childClass. The
// comparison is against any attribute value, not only class.
//
//	<b>
//	    <b class="childClass">child text</b> parent text
//	</b>
func FindParentText(doc *Document, parentTag, childClass string) []string {
	var values []string
	elements(doc).FilterFunction(withTag(parentTag)).Each(func(_ int, parent *goquery.Selection) {
		var text *string
		parent.Children().Each(func(_ int, child *goquery.Selection) {
			for range countAttrValue(child.Get(0), childClass) {
				if text == nil {
					t := parent.Text()
					text = &t
				}
				values = append(values, *text)
			}
		})
	})
	return values
}

// FindAllTextByClass collects the text of every element whose class
// attribute contains the token class. Text is not trimmed.
func FindAllTextByClass(doc *Document, class string) []string {
	var values []string
	elements(doc).FilterFunction(withClass(class)).Each(func(_ int, s *goquery.Selection) {
		values = append(values, s.Text())
	})
	return values
}

// FindAllTextByTag collects, for every parentTag element, the text of its
// first descendant with tag childTag. Parents without one are skipped.
//
//	<tbody>
//	    <li><strong>label</strong> value</li>
//	</tbody>
func FindAllTextByTag(doc *Document, parentTag, childTag string) []string {
	var values []string
	elements(doc).FilterFunction(withTag(parentTag)).Each(func(_ int, parent *goquery.Selection) {
		child := firstDescendant(parent, childTag)
		if child.Length() == 0 {
			return
		}
		values = append(values, child.Text())
	})
	return values
}

// FindChildAttrByClass collects the childAttr attribute of every direct child
// of a parentTag element that has an attribute whose value equals
// childClassValue, once per such attribute. The value must match in full, so
// "btn btn-blue" matches class="btn btn-blue" but not class="btn".
//
//	<td>
//	    <a class="childClassValue" href="..." onclick="...">...</a>
//	</td>
//
// A matching child without childAttr fails the call with EMISSINGATTR.
func FindChildAttrByClass(doc *Document, parentTag, childClassValue, childAttr string) ([]string, error) {
	var values []string
	var err error
	elements(doc).FilterFunction(withTag(parentTag)).EachWithBreak(func(i int, parent *goquery.Selection) bool {
		parent.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			for range countAttrValue(child.Get(0), childClassValue) {
				val, ok := child.Attr(attrName(childAttr))
				if !ok {
					err = ktorrent.Errorf(ktorrent.EMISSINGATTR,
						"<%s> %q child of <%s> %d has no %q attribute",
						goquery.NodeName(child), childClassValue, parentTag, i, childAttr)
					return false
				}
				values = append(values, val)
			}
			return true
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// elements returns every element of doc in document order.
func elements(doc *Document) *goquery.Selection {
	return doc.Find("*")
}

// firstDescendant returns the first descendant of s with tag, in pre-order.
// The selection is empty if there is none.
func firstDescendant(s *goquery.Selection, tag string) *goquery.Selection {
	return s.Find("*").FilterFunction(withTag(tag)).First()
}

func withTag(tag string) func(int, *goquery.Selection) bool {
	return func(_ int, s *goquery.Selection) bool {
		return strings.EqualFold(goquery.NodeName(s), tag)
	}
}

func withClass(token string) func(int, *goquery.Selection) bool {
	return func(_ int, s *goquery.Selection) bool {
		return hasClassToken(s.Get(0), token)
	}
}

// hasClassToken reports whether the class attribute of n, split on ASCII
// whitespace, contains token as a whole word.
func hasClassToken(n *html.Node, token string) bool {
	if n == nil || token == "" {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace != "" || a.Key != "class" {
			continue
		}
		for _, c := range strings.FieldsFunc(a.Val, isASCIISpace) {
			if c == token {
				return true
			}
		}
	}
	return false
}

// countAttrValue returns how many attributes of n have exactly value.
func countAttrValue(n *html.Node, value string) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, a := range n.Attr {
		if a.Val == value {
			count++
		}
	}
	return count
}

// attrName lowercases name the way the HTML parser lowercases attribute keys.
func attrName(name string) string {
	return strings.ToLower(name)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
