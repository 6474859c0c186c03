package i18n

// Translator retrieves localized messages for decode reason codes.
// data provides the fragments to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "bad_primitive":
			return data["expected"] + " を期待しましたが、実際は: " + data["got"]
		case "bad_primitive_extra":
			return data["expected"] + " を期待しましたが、実際は: " + data["got"] + "\n理由: " + data["reason"]
		case "bad_type", "bad_field", "too_small_array":
			return data["expected"] + " を期待しましたが、実際は:\n" + data["got"]
		case "bad_path":
			return data["expected"] + " を期待しましたが、実際は:\n" + data["got"] + "\nノード `" + data["node"] + "` は存在しません。"
		case "bad_oneof":
			return "次のエラーが見つかりました:\n\n" + data["errors"]
		case "fail":
			return "デコーダー内で次の `fail` が発生しました: " + data["message"]
		}
	default: // "en"
		switch code {
		case "bad_primitive":
			return "Expecting " + data["expected"] + " but instead got: " + data["got"]
		case "bad_primitive_extra":
			return "Expecting " + data["expected"] + " but instead got: " + data["got"] + "\nReason: " + data["reason"]
		case "bad_type", "bad_field", "too_small_array":
			return "Expecting " + data["expected"] + " but instead got:\n" + data["got"]
		case "bad_path":
			return "Expecting " + data["expected"] + " but instead got:\n" + data["got"] + "\nNode `" + data["node"] + "` is unknown."
		case "bad_oneof":
			return "The following errors were found:\n\n" + data["errors"]
		case "fail":
			return "The following `failure` occurred with the decoder: " + data["message"]
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
