//go:build unit

package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"quinta-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedAnswer(t *testing.T) {
	prop := &queries.PropertyView{
		Name:             "La Quinta Funes",
		RulesAndPolicies: "No se permiten mascotas.",
	}

	t.Run("rules question quotes the policy text", func(t *testing.T) {
		got := cannedAnswer("Cuales son las reglas de la casa?", prop)
		assert.Contains(t, got, "No se permiten mascotas.")
	})

	t.Run("long accented policy text is cut on a rune boundary", func(t *testing.T) {
		long := &queries.PropertyView{
			Name:             prop.Name,
			RulesAndPolicies: strings.Repeat("música", 50),
		}

		got := cannedAnswer("reglas?", long)
		require.True(t, utf8.ValidString(got), "reply must stay valid UTF-8")
		assert.Contains(t, got, "música")
	})

	t.Run("unknown question falls back to a greeting", func(t *testing.T) {
		got := cannedAnswer("hola", prop)
		assert.Contains(t, got, prop.Name)
	})
}

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short string passes through", in: "corta", limit: 10, want: "corta"},
		{name: "ascii cut at the limit", in: "abcdef", limit: 3, want: "abc"},
		{name: "multi-byte runes survive the cut", in: "áéíóú", limit: 3, want: "áéí"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncateRunes(tc.in, tc.limit)
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
