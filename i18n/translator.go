// Package i18n localizes the messages attached to validation errors.
package i18n

import "golang.org/x/text/language"

// Translator retrieves localized messages for error codes. data provides
// optional metadata to embed in the message (for example, "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.German,
}

var matcher = language.NewMatcher(supported)

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ tag language.Tag }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.tag {
	case language.German:
		switch code {
		case "parameter_not_positive":
			return "ganzzahliger Parameter muss positiv sein"
		case "parameter_out_of_range":
			return withBounds("Parameter außerhalb des zulässigen Bereichs", data)
		case "parameter_not_finite":
			return "Parameter ist NaN oder unendlich"
		case "pole_at_non_positive_integer":
			return "Polstelle bei nicht-positiver Ganzzahl"
		case "invalid_combination":
			return "ungültige Parameterkombination"
		case "parameter_exceeds_maximum_integer":
			return withMax("Parameter überschreitet den darstellbaren Maximalwert", data)
		}
	default:
		switch code {
		case "parameter_not_positive":
			return "integer parameter must be positive"
		case "parameter_out_of_range":
			return withBounds("parameter out of range", data)
		case "parameter_not_finite":
			return "parameter is NaN or infinite"
		case "pole_at_non_positive_integer":
			return "pole at non-positive integer"
		case "invalid_combination":
			return "invalid parameter combination"
		case "parameter_exceeds_maximum_integer":
			return withMax("parameter exceeds maximum representable integer", data)
		}
	}
	return code
}

func withBounds(msg string, data map[string]string) string {
	if data == nil {
		return msg
	}
	return msg + " [" + data["min"] + ", " + data["max"] + "]"
}

func withMax(msg string, data map[string]string) string {
	if data == nil || data["max"] == "" {
		return msg
	}
	return msg + " (max " + data["max"] + ")"
}

var currentTranslator Translator = dictTranslator{tag: language.English}

// SetLanguage switches the built-in Translator to the best match for the
// given BCP 47 tag (falls back to English).
func SetLanguage(lang string) {
	_, idx := language.MatchStrings(matcher, lang)
	currentTranslator = dictTranslator{tag: supported[idx]}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{tag: language.English}
		return
	}
	currentTranslator = tr
}

// T resolves code through the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
