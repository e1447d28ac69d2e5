package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, PromptAKey, "Введите число A (A > B): ")
	message.SetString(lang, PromptBKey, "Введите число B: ")
	message.SetString(lang, OrderingViolationKey, "Ошибка: A должно быть больше B.")
	message.SetString(lang, HeaderKey, "Нечетные числа от %s до %s в порядке убывания:")
}
