package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want token
	}{
		{"begin", token{kind: verbToken, raw: "begin", verb: BeginVerb}},
		{"end", token{kind: verbToken, raw: "end", verb: EndVerb}},
		{"BEGIN", token{kind: passthroughToken, raw: "BEGIN", verb: BeginVerb}},
		{"beginX", token{kind: passthroughToken, raw: "beginX", verb: BeginVerb}},
		{"Ending", token{kind: passthroughToken, raw: "Ending", verb: EndVerb}},
		{"beginning", token{kind: passthroughToken, raw: "beginning"}},
		{"endpoint=x", token{kind: passthroughToken, raw: "endpoint=x"}},
		{"/begin:true", token{kind: passthroughToken, raw: "/begin:true"}},
		{"foo", token{kind: passthroughToken, raw: "foo"}},
		{"/d:a=b=c", token{kind: propertyToken, raw: "/d:a=b=c", key: "a", value: "b=c"}},
		{"/d:a=", token{kind: propertyToken, raw: "/d:a=", key: "a", value: ""}},
		{"/s:  file.xml", token{kind: settingsFileToken, raw: "/s:  file.xml", path: "file.xml"}},
		{"/key:k1", token{kind: identityToken, raw: "/key:k1", key: ProjectKeyPrefix, value: "k1"}},
		{"/name:n 1", token{kind: identityToken, raw: "/name:n 1", key: ProjectNamePrefix, value: "n 1"}},
		{"/version:1.0", token{kind: identityToken, raw: "/version:1.0", key: VersionPrefix, value: "1.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.raw))
		})
	}
}

func TestParseProperty_Problems(t *testing.T) {
	tests := []struct {
		body      string
		wantKey   string
		wantValue string
		wantBad   bool
	}{
		{"k=v", "k", "v", false},
		{"k=v with spaces", "k", "v with spaces", false},
		{" k=v", " k", "v", true},
		{"k =v", "k ", "v", true},
		{"k= v", "k", " v", true},
		{"=v", "", "v", true},
		{"novalue", "novalue", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			key, value, problem := parseProperty(tt.body)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantBad, problem != "")
		})
	}
}
