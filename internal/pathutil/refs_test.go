package pathutil

import "testing"

func TestRefBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"schema", SchemaRef("Pet"), "#/components/schemas/Pet"},
		{"parameter", ParameterRef("limit"), "#/components/parameters/limit"},
		{"response", ResponseRef("NotFound"), "#/components/responses/NotFound"},
		{"security scheme", SecuritySchemeRef("api_key"), "#/components/securitySchemes/api_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSplitComponentRef(t *testing.T) {
	tests := []struct {
		ref      string
		wantKind string
		wantName string
		wantOK   bool
	}{
		{"#/components/schemas/Pet", "schemas", "Pet", true},
		{"#/components/responses/NotFound", "responses", "NotFound", true},
		{"#/components/schemas/a/b", "schemas", "a/b", true},
		{"#/components/schemas/", "", "", false},
		{"#/components/schemas", "", "", false},
		{"#/definitions/Pet", "", "", false},
		{"other.json#/components/schemas/Pet", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			kind, name, ok := SplitComponentRef(tt.ref)
			if kind != tt.wantKind || name != tt.wantName || ok != tt.wantOK {
				t.Errorf("SplitComponentRef(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.ref, kind, name, ok, tt.wantKind, tt.wantName, tt.wantOK)
			}
		})
	}
}
