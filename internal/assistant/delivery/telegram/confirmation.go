package telegram

import "strings"

var confirmWords = map[string]bool{
	"sim":       true,
	"confirmo":  true,
	"confirma":  true,
	"confirmar": true,
	"pode":      true,
	"ok":        true,
	"claro":     true,
	"isso":      true,
}

var cancelWords = map[string]bool{
	"não":      false,
	"nao":      false,
	"cancela":  false,
	"cancelar": false,
	"negativo": false,
}

// ParseConfirmation reports whether the text is a bare yes/no reply and, if
// so, which. Confirmation replies bypass the parser and resolve the session's
// pending command. Only whole-message matches count: a longer utterance that
// merely contains "sim" is a fresh command, not a confirmation.
func ParseConfirmation(text string) (confirmed bool, ok bool) {
	word := strings.ToLower(strings.TrimSpace(text))
	word = strings.TrimRight(word, ".!")

	if confirmWords[word] {
		return true, true
	}
	if _, isCancel := cancelWords[word]; isCancel {
		return false, true
	}
	return false, false
}
