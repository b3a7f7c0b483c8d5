// Package alert flags diary text that mentions self-harm or acute distress.
// The scan is advisory: callers decide how to surface the support message.
package alert

import "strings"

// Distress vocabulary carried over unchanged from the mobile app. The app's
// audience is Brazilian, so the keywords stay in Portuguese.
var keywords = []string{
	"suicidio", "morte", "morrer", "matar", "tirar a vida", "acabar com tudo",
	"desistir", "sem sentido", "inutil", "foda-se", "não aguento", "cortar",
	"ferir", "machucar", "ódio", "raiva", "desespero", "sofrimento", "fim",
	"vontade de morrer", "não quero viver", "acabou", "nada importa",
	"perder a vida", "sofrer", "desamparo", "sem saída", "angustia", "desolado",
	"desesperado", "sem esperança",
}

// SupportMessage is the static advisory shown when a scan fires.
const SupportMessage = "Você merece cuidado. Se estiver em risco, ligue para o número de emergência.\n\n📞 188 (CVV Brasil)\n📞 192 / 193"

// Scan reports whether any distress keyword occurs in text, case-insensitively.
// Empty text never matches. Pure function, no side effects.
func Scan(text string) bool {
	if text == "" {
		return false
	}

	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
