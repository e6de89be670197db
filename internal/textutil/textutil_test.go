package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "count", want: "count"},
		{name: "this qualifier", in: "this.count", want: "count"},
		{name: "leading underscore", in: "_count", want: "count"},
		{name: "trailing digits", in: "count2", want: "count"},
		{name: "trailing underscore and digits", in: "count_1", want: "count"},
		{name: "case", in: "Count", want: "count"},
		{name: "everything", in: "this._Count_12", want: "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSameNormalized(t *testing.T) {
	assert.True(t, SameNormalized("x", "x2"))
	assert.True(t, SameNormalized("_x", "this.x"))
	assert.False(t, SameNormalized("x", "y"))
	assert.False(t, SameNormalized("first", "firstName"))
}

func TestContainsToken(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		token string
		want  bool
	}{
		{name: "argument", s: "f(a)", token: "a", want: true},
		{name: "prefix of longer name", s: "f(ab)", token: "a", want: false},
		{name: "suffix of longer name", s: "f(ba)", token: "a", want: false},
		{name: "second occurrence", s: "ab + a", token: "a", want: true},
		{name: "start of string", s: "a.b()", token: "a", want: true},
		{name: "digits", s: "a1 = 2", token: "a", want: false},
		{name: "empty token", s: "abc", token: "", want: false},
		{name: "absent", s: "x = y;", token: "z", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsToken(tt.s, tt.token))
		})
	}
}

func TestSignatureLines(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		signature bool
	}{
		{name: "public method", line: "public void run() {", signature: true},
		{name: "overridden method", line: "@Override public void run() {", signature: true},
		{name: "nullable return", line: "@Nullable public String get(int index) {", signature: true},
		{name: "throws clause", line: "public void call(String value) throws IOException {", signature: true},
		{name: "call statement", line: "run(value);", signature: false},
		{name: "declaration", line: "String value = compute();", signature: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prepared := PrepareLine(tt.line, DefaultSignatureAnnotations)
			assert.Equal(t, tt.signature, IsMethodSignature(prepared), "prepared line %q", prepared)
		})
	}
}

func TestPrepareLine(t *testing.T) {
	assert.Equal(t, "public void run()", PrepareLine("  @Override public void run()  ", DefaultSignatureAnnotations))
	assert.Equal(t, "public void run() ", PrepareLine("public void run() throws Exception {", nil))
	assert.Equal(t, "@Override void run()", PrepareLine("@Override void run()", nil))
}
