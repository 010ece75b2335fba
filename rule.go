package ktorrent

// Kind identifies one of the selector shapes used by the target sites.
type Kind string

// Supported extractor kinds.
const (
	// KindChildAttrByTag reads an attribute of the first descendant with a
	// tag under every element carrying a class token. Strict.
	KindChildAttrByTag Kind = "child-attr-by-tag"

	// KindParentText returns the text of a parent element whenever one of
	// its direct children has an attribute value equal to ChildClass.
	KindParentText Kind = "parent-text"

	// KindTextByClass returns the text of every element carrying a class token.
	KindTextByClass Kind = "text-by-class"

	// KindTextByTag returns the text of the first descendant with a tag
	// under every parent tag. Parents without one are skipped.
	KindTextByTag Kind = "text-by-tag"

	// KindChildAttrByClass reads an attribute of every direct child whose
	// attribute value equals ChildClass. Strict.
	KindChildAttrByClass Kind = "child-attr-by-class"
)

// Kinds returns all supported extractor kinds.
func Kinds() []Kind {
	return []Kind{
		KindChildAttrByTag,
		KindParentText,
		KindTextByClass,
		KindTextByTag,
		KindChildAttrByClass,
	}
}

// Rule names one extractor together with its selector parameters.
// Only the fields required by Kind are consulted.
type Rule struct {
	Kind        Kind   `json:"kind" yaml:"kind"`
	ParentClass string `json:"parentClass,omitempty" yaml:"parentClass,omitempty"`
	ParentTag   string `json:"parentTag,omitempty" yaml:"parentTag,omitempty"`
	ChildTag    string `json:"childTag,omitempty" yaml:"childTag,omitempty"`
	ChildClass  string `json:"childClass,omitempty" yaml:"childClass,omitempty"`
	ChildAttr   string `json:"childAttr,omitempty" yaml:"childAttr,omitempty"`
}

// IsZero reports whether the rule is unset.
func (r Rule) IsZero() bool {
	return r == Rule{}
}

// Validate returns an error if the rule is missing a parameter its kind requires.
func (r Rule) Validate() error {
	required := map[string]string{}
	switch r.Kind {
	case KindChildAttrByTag:
		required["parent class"] = r.ParentClass
		required["child tag"] = r.ChildTag
		required["child attribute"] = r.ChildAttr
	case KindParentText:
		required["parent tag"] = r.ParentTag
		required["child class"] = r.ChildClass
	case KindTextByClass:
		required["parent class"] = r.ParentClass
	case KindTextByTag:
		required["parent tag"] = r.ParentTag
		required["child tag"] = r.ChildTag
	case KindChildAttrByClass:
		required["parent tag"] = r.ParentTag
		required["child class"] = r.ChildClass
		required["child attribute"] = r.ChildAttr
	case "":
		return Errorf(EINVALID, "rule kind required")
	default:
		return Errorf(EINVALID, "unknown rule kind %q", r.Kind)
	}

	for _, name := range []string{"parent class", "parent tag", "child tag", "child class", "child attribute"} {
		if v, ok := required[name]; ok && v == "" {
			return Errorf(EINVALID, "%s rule: %s required", r.Kind, name)
		}
	}
	return nil
}
