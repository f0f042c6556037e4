package tracing

// Span names.
const (
	SpanFormSubmit    = "form.submit"
	SpanAccountCreate = "account.create"
)

// Span attribute keys.
const (
	AttrFormFieldCount    = "form.field_count"
	AttrFormInvalidFields = "form.invalid_fields"
	AttrAccountBackend    = "account.backend"
	AttrAccountID         = "account.id"
	AttrErrorMessage      = "error.message"
)
