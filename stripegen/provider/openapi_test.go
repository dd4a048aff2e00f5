package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/stripe/stripegen/ir"
)

func buildMini(t *testing.T) *ir.Schema {
	t.Helper()
	p := &OpenAPIProvider{}
	s, err := p.BuildSchema(context.Background(), OpenAPIInputOptions{Path: "testdata/mini.json"})
	require.NoError(t, err)
	return s
}

func warningCodes(s *ir.Schema) []string {
	var codes []string
	for _, w := range s.Warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestBuildSchema_Resources(t *testing.T) {
	s := buildMini(t)
	assert.Equal(t, "2025-01-01", s.APIVersion)

	var names []string
	for _, r := range s.Resources {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"gear", "owner", "spring", "widget", "widget_dimensions", "widget_warranty"}, names)

	w := s.FindResource("widget")
	require.NotNil(t, w)
	assert.Equal(t, "widget", w.Tag)
	assert.Equal(t, "id", w.Fields[0].Name)
	assert.Equal(t, "object", w.Fields[1].Name)
	assert.Equal(t, ir.ID("widget"), w.Fields[0].Type)
	assert.True(t, w.Fields[0].Required)
	assert.True(t, w.HasID())

	assert.Nil(t, w.Field("blob"), "oneOf fields are skipped")
	assert.Equal(t, ir.Expandable("owner"), w.Field("owner").Type)
	assert.Equal(t, ir.Expandable("part"), w.Field("part").Type)
	assert.Equal(t, ir.Ref("widget_dimensions"), w.Field("dimensions").Type)
	assert.True(t, w.Field("dimensions").Nullable)
	assert.Equal(t, ir.Ref("widget_warranty"), w.Field("warranty").Type)
	assert.Equal(t, ir.Array(ir.Primitive(ir.PrimitiveString)), w.Field("labels").Type)
	assert.Equal(t, ir.Map(ir.Primitive(ir.PrimitiveString)), w.Field("metadata").Type)
	assert.Equal(t, ir.Primitive(ir.PrimitiveFloat), w.Field("weight").Type)
	assert.True(t, w.Field("size").Required)
	assert.False(t, w.Field("weight").Required)

	dims := s.FindResource("widget_dimensions")
	require.NotNil(t, dims)
	assert.True(t, dims.Nested())
	assert.Equal(t, "widget", dims.Owner)
	assert.Equal(t, "Holds the dimensions of a widget.", dims.Documentation.Summary)

	assert.Equal(t, []ir.IDDescriptor{{Resource: "gear"}, {Resource: "owner"}, {Resource: "spring"}, {Resource: "widget"}}, s.IDs)
}

func TestBuildSchema_Unions(t *testing.T) {
	s := buildMini(t)
	require.Len(t, s.Unions, 1)
	u := s.Unions[0]
	assert.Equal(t, "part", u.Name)
	assert.Equal(t, "object", u.Discriminator)
	assert.Equal(t, []ir.UnionVariant{{Tag: "gear", Resource: "gear"}, {Tag: "spring", Resource: "spring"}}, u.Variants)
	assert.Nil(t, s.FindResource("deleted_part"))
	assert.Nil(t, s.FindResource("deleted_widget"))
}

func TestBuildSchema_Enums(t *testing.T) {
	s := buildMini(t)

	var names []string
	for _, e := range s.Enums {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"spring_kind", "widget_finish", "widget_finish_request", "widget_state"}, names)

	finish := s.FindEnum("widget_finish")
	assert.True(t, finish.Open)
	assert.Equal(t, []string{"gloss", "matte", "satin"}, finish.Values)
	assert.Equal(t, "The surface finish of a widget.", finish.Documentation.Summary)

	assert.False(t, s.FindEnum("widget_finish_request").Open, "request-only enums are closed")
	assert.True(t, s.FindEnum("widget_state").Open)
	assert.True(t, s.FindEnum("spring_kind").Open)
}

func TestBuildSchema_Operations(t *testing.T) {
	s := buildMini(t)

	var names []string
	for _, o := range s.Operations {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"CreateWidget", "DeleteOwnerPart", "DeleteWidget", "ListWidgets", "PolishWidget", "RetrieveWidget"}, names)

	list := s.FindOperation("ListWidgets")
	assert.Equal(t, "GetWidgets", list.ID)
	assert.Equal(t, ir.OutputList, list.Shape)
	assert.Equal(t, "widget", list.Output)
	var params []string
	for _, p := range list.Params {
		params = append(params, p.Name)
		assert.Equal(t, ir.InQuery, p.In)
	}
	assert.Equal(t, []string{"created", "ending_before", "limit", "owner", "starting_after"}, params)
	assert.Equal(t, ir.Range(), list.Param("created").Type)
	assert.Equal(t, []string{"min=1", "max=100"}, list.Param("limit").Constraints)
	assert.Equal(t, ir.ID("owner"), list.Param("owner").Type)
	assert.Empty(t, list.Param("starting_after").Constraints)

	create := s.FindOperation("CreateWidget")
	assert.Equal(t, "POST", create.Method)
	assert.Equal(t, "Creates a widget.", create.Documentation.Summary)
	assert.Nil(t, create.Param("expand"))
	assert.Equal(t, []string{"len=3"}, create.Param("code").Constraints)
	assert.Equal(t, []string{"email"}, create.Param("contact").Constraints)
	assert.Equal(t, []string{"max=40"}, create.Param("label").Constraints)
	assert.Equal(t, []string{"max=10"}, create.Param("tags").Constraints)
	assert.Equal(t, ir.Ref("widget_finish_request"), create.Param("finish").Type)
	assert.Equal(t, ir.Map(ir.Primitive(ir.PrimitiveString)), create.Param("metadata").Type)
	size := create.Param("size")
	assert.True(t, size.Required)
	assert.Equal(t, ir.InBody, size.In)
	assert.Equal(t, []string{"min=1"}, size.Constraints)
	require.Len(t, create.RequiredParams(), 1)

	get := s.FindOperation("RetrieveWidget")
	assert.Equal(t, "Retrieves a widget.", get.Documentation.Summary)
	require.Len(t, get.PathParams, 1)
	assert.Equal(t, ir.ID("widget"), get.PathParams[0].Type)

	del := s.FindOperation("DeleteWidget")
	assert.Equal(t, ir.OutputDeleted, del.Shape)
	assert.Equal(t, "widget", del.Output)

	part := s.FindOperation("DeleteOwnerPart")
	assert.Equal(t, ir.OutputDeleted, part.Shape)
	assert.Equal(t, "part", part.Output)
	require.Len(t, part.PathParams, 2)
	assert.Equal(t, ir.ID("owner"), part.PathParams[0].Type)
	assert.Equal(t, ir.Primitive(ir.PrimitiveString), part.PathParams[1].Type)
	assert.Equal(t, "/v1/owners/%s/parts/%s", part.Format())

	polish := s.FindOperation("PolishWidget")
	assert.Equal(t, "/v1/widgets/{widget}/polish", polish.Path)
	assert.Equal(t, "#/paths/~1v1~1widgets~1{widget}~1polish/post", polish.Source.Pointer)
}

func TestBuildSchema_Warnings(t *testing.T) {
	s := buildMini(t)
	codes := warningCodes(s)
	assert.Contains(t, codes, ir.WarnUnsupportedSchema)
	assert.Contains(t, codes, ir.WarnUnknownExpandField)
	assert.Contains(t, codes, ir.WarnEnumMerged)
	assert.Contains(t, codes, ir.WarnUnsupportedOutput)
	assert.Contains(t, codes, ir.WarnOperationSkipped)
}

func TestBuildSchema_Validates(t *testing.T) {
	assert.Empty(t, buildMini(t).Validate())
}

func TestBuildSchema_NameOverride(t *testing.T) {
	p := &OpenAPIProvider{}
	s, err := p.BuildSchema(context.Background(), OpenAPIInputOptions{
		Path:  "testdata/mini.json",
		Names: map[string]string{"PostWidgetsWidgetPolish": "BuffWidget"},
	})
	require.NoError(t, err)
	assert.NotNil(t, s.FindOperation("BuffWidget"))
	assert.Nil(t, s.FindOperation("PolishWidget"))
}

func TestBuildSchema_Errors(t *testing.T) {
	p := &OpenAPIProvider{}
	_, err := p.BuildSchema(context.Background(), OpenAPIInputOptions{})
	assert.ErrorContains(t, err, "no OpenAPI document")

	_, err = p.BuildSchema(context.Background(), OpenAPIInputOptions{Data: []byte("{not json")})
	assert.ErrorContains(t, err, "failed to load")

	_, err = p.BuildSchema(context.Background(), OpenAPIInputOptions{Path: "testdata/missing.json"})
	assert.Error(t, err)
}

// The api package is generated from api/spec3.json; its builder names are
// part of the public surface.
func TestBuildSchema_StripeSurface(t *testing.T) {
	p := &OpenAPIProvider{}
	s, err := p.BuildSchema(context.Background(), OpenAPIInputOptions{Path: "../../api/spec3.json"})
	require.NoError(t, err)
	require.Empty(t, s.Validate())
	assert.Equal(t, "2024-06-20", s.APIVersion)

	var names []string
	for _, o := range s.Operations {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{
		"AttachPaymentMethod", "CancelPaymentIntent", "CaptureCharge", "CloseDispute",
		"CreateCharge", "CreateCustomer", "CreatePaymentIntent",
		"DeleteCustomer", "DeleteCustomerBankAccount", "DeleteCustomerSource", "DetachPaymentMethod",
		"ListCharges", "ListCustomers", "ListDisputes", "ListPaymentIntents", "ListPaymentMethods",
		"RetrieveCharge", "RetrieveCustomer", "RetrieveDispute", "RetrievePaymentIntent", "RetrievePaymentMethod",
		"UpdateCustomer", "UpdateDispute", "VerifyCustomerSource",
	}, names)

	assert.False(t, s.FindEnum("payment_intent_cancel_reason").Open)
	assert.True(t, s.FindEnum("card_regulated_status").Open)
	assert.True(t, s.FindEnum("customer_tax_exempt").Open, "used in both request and response")
	assert.True(t, s.FindEnum("payment_method_type").Open)

	charge := s.FindOperation("CreateCharge")
	assert.Equal(t, []string{"min=1"}, charge.Param("amount").Constraints)
	assert.Equal(t, []string{"len=3"}, charge.Param("currency").Constraints)
	assert.Equal(t, ir.ID("source"), charge.Param("source").Type)
	assert.Equal(t, ir.ID("customer"), charge.Param("customer").Type)

	src := s.FindOperation("DeleteCustomerSource")
	assert.Equal(t, "payment_source", src.Output)
	assert.Equal(t, ir.OutputDeleted, src.Shape)
	assert.Equal(t, ir.Primitive(ir.PrimitiveString), src.PathParams[1].Type)

	ba := s.FindOperation("DeleteCustomerBankAccount")
	assert.Equal(t, ir.ID("bank_account"), ba.PathParams[1].Type)

	assert.Equal(t, ir.Expandable("payment_source"), s.FindResource("customer").Field("default_source").Type)
	assert.Equal(t, ir.Ref("payment_source"), s.FindResource("charge").Field("source").Type)
	assert.Equal(t, ir.Ref("card_funding"), s.FindResource("payment_method_card").Field("funding").Type)
	assert.Equal(t, "payment_method", s.FindResource("payment_method_card").Owner)
}
