package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\r\v\f ", ""},
		{"carriage return", "help\r", "help"},
		{"both ends", "  hello Ada \t", "hello Ada"},
		{"inner whitespace kept", "a  b", "a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(trimSpace([]byte(tt.input))))
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantArgs string
		wantSet  bool
	}{
		{"name only", "help", "help", "", false},
		{"name and argument", "hello Ada", "hello", "Ada", true},
		{"whitespace run", "hello \t  Ada", "hello", "Ada", true},
		{"argument keeps inner spacing", "echo a  b c", "echo", "a  b c", true},
		{"tab separator", "hello\tAda", "hello", "Ada", true},
		{"unicode argument", "hello Zoë", "hello", "Zoë", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args := parseLine(tt.line)
			assert.Equal(t, tt.wantName, name)
			text, ok := args.Value()
			assert.Equal(t, tt.wantArgs, text)
			assert.Equal(t, tt.wantSet, ok)
		})
	}
}

func TestArgs(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		args := NoArgs()
		assert.False(t, args.IsSet())
		assert.Equal(t, "", args.String())
		assert.Empty(t, args.Fields())
	})

	t.Run("empty text is absent", func(t *testing.T) {
		assert.False(t, ArgsOf("").IsSet())
	})

	t.Run("split", func(t *testing.T) {
		first, rest := ArgsOf("set  name Ada").Split()
		assert.Equal(t, "set", first)
		assert.Equal(t, "name Ada", rest.String())

		first, rest = ArgsOf("last").Split()
		assert.Equal(t, "last", first)
		assert.False(t, rest.IsSet())
	})

	t.Run("fields", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, ArgsOf("a \t b  c").Fields())
	})
}

func TestContainsSpace(t *testing.T) {
	assert.False(t, containsSpace("hello"))
	assert.True(t, containsSpace("hel lo"))
	assert.True(t, containsSpace("hello\n"))
	assert.True(t, containsSpace("\thello"))
}
