package pathutil

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		key    string
		want   string
	}{
		{name: "identifier", parent: Root, key: "paths", want: "$.paths"},
		{name: "identifier with digits", parent: "$.components.schemas", key: "Pet2", want: "$.components.schemas.Pet2"},
		{name: "identifier with dash", parent: "$.x", key: "x-internal", want: "$.x.x-internal"},
		{name: "ref key", parent: "$.items", key: "$ref", want: "$.items.$ref"},
		{name: "path template", parent: "$.paths", key: "/pets/{id}", want: "$.paths['/pets/{id}']"},
		{name: "status code", parent: "$.responses", key: "200", want: "$.responses['200']"},
		{name: "leading dash", parent: Root, key: "-a", want: "$['-a']"},
		{name: "empty key", parent: Root, key: "", want: "$['']"},
		{name: "media type", parent: "$.content", key: "application/json", want: "$.content['application/json']"},
		{name: "quote escaped", parent: Root, key: "it's", want: `$['it\'s']`},
		{name: "backslash escaped", parent: Root, key: `a\b`, want: `$['a\\b']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.parent, tt.key); got != tt.want {
				t.Errorf("Key(%q, %q) = %q, want %q", tt.parent, tt.key, got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	got := Index(Key(Key(Root, "paths"), "/pets"), 0)
	want := "$.paths['/pets'][0]"
	if got != want {
		t.Errorf("Index() = %q, want %q", got, want)
	}

	got = Key(Index(Key(Root, "allOf"), 3), "properties")
	want = "$.allOf[3].properties"
	if got != want {
		t.Errorf("Index() = %q, want %q", got, want)
	}
}

func TestTemplateParamRegex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://{region}.example.com/{version}", want: "https://x.example.com/x"},
		{in: "/pets/{petId}", want: "/pets/x"},
		{in: "https://example.com", want: "https://example.com"},
		{in: "/{}", want: "/x"},
	}
	for _, tt := range tests {
		if got := TemplateParamRegex.ReplaceAllString(tt.in, "x"); got != tt.want {
			t.Errorf("ReplaceAllString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
