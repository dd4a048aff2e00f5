package ir

// UnionDescriptor describes a polymorphic value whose concrete variant is
// chosen by a discriminator field.
type UnionDescriptor struct {
	// Name is the wire name, e.g. "payment_source".
	Name string

	// Discriminator is the JSON key holding the variant tag, usually "object".
	Discriminator string

	// Variants in tag order.
	Variants []UnionVariant

	Documentation Documentation
	Source        Source
}

// UnionVariant maps a discriminator value to a resource.
type UnionVariant struct {
	Tag      string
	Resource string
}

// ExpandableFields returns the fields expandable in any variant. A field
// whose targets disagree between variants maps to "".
func (u *UnionDescriptor) ExpandableFields(s *Schema) map[string]string {
	out := make(map[string]string)
	for _, v := range u.Variants {
		r := s.FindResource(v.Resource)
		if r == nil {
			continue
		}
		for field, target := range r.ExpandableFields() {
			if prev, ok := out[field]; ok && prev != s.TagOf(target) {
				out[field] = ""
				continue
			}
			out[field] = s.TagOf(target)
		}
	}
	return out
}
