package i18n

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMessages_Russian(t *testing.T) {
	t.Parallel()

	m := Messages(language.Russian)

	require.Equal(t, "Введите число A (A > B): ", m.PromptA)
	require.Equal(t, "Введите число B: ", m.PromptB)
	require.Equal(t, "Ошибка: A должно быть больше B.", m.OrderingViolation)
	require.Equal(t, "Нечетные числа от 10 до 1 в порядке убывания:", m.Header(big.NewInt(10), big.NewInt(1)))
}

func TestMessages_English(t *testing.T) {
	t.Parallel()

	m := Messages(language.MustParse("en-GB"))

	require.Equal(t, "Error: A must be greater than B.", m.OrderingViolation)
	require.Equal(t, "Odd numbers from -3 to -9 in descending order:", m.Header(big.NewInt(-3), big.NewInt(-9)))
}

func TestMessages_HeaderHasNoDigitGrouping(t *testing.T) {
	t.Parallel()

	m := Messages(language.Russian)
	huge, _ := new(big.Int).SetString("100000000000000000001", 10)

	require.Equal(t,
		"Нечетные числа от 100000000000000000001 до 1000000 в порядке убывания:",
		m.Header(huge, big.NewInt(1000000)),
	)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tag      language.Tag
		expected language.Tag
	}{
		{name: "exact russian", tag: language.Russian, expected: language.Russian},
		{name: "regional russian", tag: language.MustParse("ru-RU"), expected: language.Russian},
		{name: "regional english", tag: language.AmericanEnglish, expected: language.English},
		{name: "unsupported falls back", tag: language.Japanese, expected: Default},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected.String(), Match(tc.tag).String())
		})
	}
}
