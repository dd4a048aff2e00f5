package provider

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/broady/stripe/stripegen/ir"
)

var versionSegment = regexp.MustCompile(`^v\d+$`)

// builderName derives a builder name from the method and path:
//
//	GET    /v1/customers                          ListCustomers
//	POST   /v1/customers                          CreateCustomer
//	GET    /v1/customers/{customer}               RetrieveCustomer
//	POST   /v1/customers/{customer}               UpdateCustomer
//	DELETE /v1/customers/{customer}/sources/{id}  DeleteCustomerSource
//	POST   /v1/disputes/{dispute}/close           CloseDispute
//
// A static segment that follows a parameter and ends the path is an action
// unless it is plural.
func builderName(method, path string, shape ir.OutputShape) string {
	segs := pathSegments(path)
	var nouns []string
	var action string
	for i, seg := range segs {
		if isParam(seg) {
			continue
		}
		last := i == len(segs)-1
		if last && i > 0 && isParam(segs[i-1]) && shape != ir.OutputList && !strings.HasSuffix(seg, "s") {
			action = seg
			continue
		}
		nouns = append(nouns, seg)
	}

	var verb string
	switch {
	case shape == ir.OutputList:
		verb = "List"
	case action != "":
		verb = strcase.ToCamel(action)
	case method == http.MethodGet:
		verb = "Retrieve"
	case method == http.MethodDelete:
		verb = "Delete"
	case len(segs) > 0 && isParam(segs[len(segs)-1]):
		verb = "Update"
	default:
		verb = "Create"
	}

	var b strings.Builder
	b.WriteString(verb)
	for i, n := range nouns {
		if shape != ir.OutputList || i < len(nouns)-1 {
			n = singular(n)
		}
		b.WriteString(strcase.ToCamel(n))
	}
	return b.String()
}

// pathSegments splits a path and drops the leading version segment.
func pathSegments(path string) []string {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) > 0 && versionSegment.MatchString(segs[0]) {
		segs = segs[1:]
	}
	return segs
}

func isParam(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// singular turns a collection segment into a resource name.
func singular(s string) string {
	switch {
	case strings.HasSuffix(s, "ies"):
		return strings.TrimSuffix(s, "ies") + "y"
	case strings.HasSuffix(s, "sses"), strings.HasSuffix(s, "xes"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "s"):
		return strings.TrimSuffix(s, "s")
	}
	return s
}
