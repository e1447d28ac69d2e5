package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, PromptAKey, PromptAKey)
	message.SetString(lang, PromptBKey, PromptBKey)
	message.SetString(lang, OrderingViolationKey, OrderingViolationKey)
	message.SetString(lang, HeaderKey, HeaderKey)
}
