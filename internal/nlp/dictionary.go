// Package nlp recognizes the entities of specification sentences and holds
// the per-language words the generator writes back into test cases.
package nlp

import (
	"cmp"
	"slices"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"

	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
)

const DefaultLanguage = "en"

// UI actions recognized in sentences.
const (
	ActionFill       = "fill"
	ActionSelect     = "select"
	ActionAppend     = "append"
	ActionAttachFile = "attachFile"
	ActionClick      = "click"
	ActionSee        = "see"
)

// IsDataInputAction reports whether the action enters data into its
// targets.
func IsDataInputAction(action string) bool {
	switch action {
	case ActionFill, ActionSelect, ActionAppend, ActionAttachFile:
		return true
	}
	return false
}

type (
	// Dictionary holds the words of a language.
	Dictionary struct {
		Language string

		// Connector joins a target and the value entered into it.
		Connector   string
		Valid       string
		Invalid     string
		RandomValue string

		keywords      map[models.NodeType][]string
		actions       map[string]string
		connectors    []string
		dataTestCases map[dtc.DataTestCase]string
	}

	keyword struct {
		text     string
		nodeType models.NodeType
	}
)

var dictionaries = map[string]*Dictionary{
	"en": {
		Language:    "en",
		Connector:   "with",
		Valid:       "valid",
		Invalid:     "invalid",
		RandomValue: "random value",
		keywords: map[models.NodeType][]string{
			models.NodeOtherwise: {"Otherwise"},
		},
		actions: map[string]string{
			"fill": ActionFill, "fills": ActionFill, "type": ActionFill, "types": ActionFill,
			"enter": ActionFill, "enters": ActionFill, "inform": ActionFill, "informs": ActionFill,
			"select": ActionSelect, "selects": ActionSelect, "choose": ActionSelect, "chooses": ActionSelect,
			"append": ActionAppend, "appends": ActionAppend,
			"attach": ActionAttachFile, "attaches": ActionAttachFile,
			"click": ActionClick, "clicks": ActionClick,
			"see": ActionSee, "sees": ActionSee,
		},
		connectors: []string{"with", "in", "on", "into"},
		dataTestCases: map[dtc.DataTestCase]string{
			dtc.ValueLowest:               "lowest applicable value",
			dtc.ValueRandomBelowMin:       "random value below minimum value",
			dtc.ValueJustBelowMin:         "value just below minimum value",
			dtc.ValueMin:                  "minimum value",
			dtc.ValueJustAboveMin:         "value just above minimum value",
			dtc.ValueZero:                 "zero value",
			dtc.ValueMedian:               "median value",
			dtc.ValueRandomBetweenMinMax:  "random value between minimum and maximum values",
			dtc.ValueJustBelowMax:         "value just below maximum value",
			dtc.ValueMax:                  "maximum value",
			dtc.ValueJustAboveMax:         "value just above maximum value",
			dtc.ValueRandomAboveMax:       "random value above maximum value",
			dtc.ValueGreatest:             "greatest applicable value",
			dtc.LengthLowest:              "lowest applicable length",
			dtc.LengthRandomBelowMin:      "random length below minimum length",
			dtc.LengthJustBelowMin:        "length just below minimum length",
			dtc.LengthMin:                 "minimum length",
			dtc.LengthJustAboveMin:        "length just above minimum length",
			dtc.LengthMedian:              "median length",
			dtc.LengthRandomBetweenMinMax: "random length between minimum and maximum lengths",
			dtc.LengthJustBelowMax:        "length just below maximum length",
			dtc.LengthMax:                 "maximum length",
			dtc.LengthJustAboveMax:        "length just above maximum length",
			dtc.LengthRandomAboveMax:      "random length above maximum length",
			dtc.LengthGreatest:            "greatest applicable length",
			dtc.FormatValid:               "valid format",
			dtc.FormatInvalid:             "invalid format",
			dtc.SetFirstElement:           "first element",
			dtc.SetSecondElement:          "second element",
			dtc.SetRandomElement:          "random element",
			dtc.SetPenultimateElement:     "penultimate element",
			dtc.SetLastElement:            "last element",
			dtc.SetNotInSet:               "not in set",
			dtc.RequiredFilled:            "filled",
			dtc.RequiredNotFilled:         "not filled",
			dtc.ComputationValid:          "valid computed value",
			dtc.ComputationInvalid:        "invalid computed value",
		},
	},
	"pt": {
		Language:    "pt",
		Connector:   "com",
		Valid:       "válido",
		Invalid:     "inválido",
		RandomValue: "valor aleatório",
		keywords: map[models.NodeType][]string{
			models.NodeOtherwise: {"Caso contrário", "Senão"},
		},
		actions: map[string]string{
			"preencho": ActionFill, "preenche": ActionFill, "informo": ActionFill, "informa": ActionFill,
			"digito": ActionFill, "digita": ActionFill,
			"seleciono": ActionSelect, "seleciona": ActionSelect, "escolho": ActionSelect, "escolhe": ActionSelect,
			"acrescento": ActionAppend, "acrescenta": ActionAppend,
			"anexo": ActionAttachFile, "anexa": ActionAttachFile,
			"clico": ActionClick, "clica": ActionClick,
			"vejo": ActionSee, "vê": ActionSee,
		},
		connectors: []string{"com", "em", "no", "na"},
		dataTestCases: map[dtc.DataTestCase]string{
			dtc.ValueLowest:               "menor valor aplicável",
			dtc.ValueRandomBelowMin:       "valor aleatório abaixo do valor mínimo",
			dtc.ValueJustBelowMin:         "valor imediatamente abaixo do valor mínimo",
			dtc.ValueMin:                  "valor mínimo",
			dtc.ValueJustAboveMin:         "valor imediatamente acima do valor mínimo",
			dtc.ValueZero:                 "valor zero",
			dtc.ValueMedian:               "valor mediano",
			dtc.ValueRandomBetweenMinMax:  "valor aleatório entre os valores mínimo e máximo",
			dtc.ValueJustBelowMax:         "valor imediatamente abaixo do valor máximo",
			dtc.ValueMax:                  "valor máximo",
			dtc.ValueJustAboveMax:         "valor imediatamente acima do valor máximo",
			dtc.ValueRandomAboveMax:       "valor aleatório acima do valor máximo",
			dtc.ValueGreatest:             "maior valor aplicável",
			dtc.LengthLowest:              "menor comprimento aplicável",
			dtc.LengthRandomBelowMin:      "comprimento aleatório abaixo do comprimento mínimo",
			dtc.LengthJustBelowMin:        "comprimento imediatamente abaixo do comprimento mínimo",
			dtc.LengthMin:                 "comprimento mínimo",
			dtc.LengthJustAboveMin:        "comprimento imediatamente acima do comprimento mínimo",
			dtc.LengthMedian:              "comprimento mediano",
			dtc.LengthRandomBetweenMinMax: "comprimento aleatório entre os comprimentos mínimo e máximo",
			dtc.LengthJustBelowMax:        "comprimento imediatamente abaixo do comprimento máximo",
			dtc.LengthMax:                 "comprimento máximo",
			dtc.LengthJustAboveMax:        "comprimento imediatamente acima do comprimento máximo",
			dtc.LengthRandomAboveMax:      "comprimento aleatório acima do comprimento máximo",
			dtc.LengthGreatest:            "maior comprimento aplicável",
			dtc.FormatValid:               "formato válido",
			dtc.FormatInvalid:             "formato inválido",
			dtc.SetFirstElement:           "primeiro elemento",
			dtc.SetSecondElement:          "segundo elemento",
			dtc.SetRandomElement:          "elemento aleatório",
			dtc.SetPenultimateElement:     "penúltimo elemento",
			dtc.SetLastElement:            "último elemento",
			dtc.SetNotInSet:               "fora do conjunto",
			dtc.RequiredFilled:            "preenchido",
			dtc.RequiredNotFilled:         "não preenchido",
			dtc.ComputationValid:          "valor computado válido",
			dtc.ComputationInvalid:        "valor computado inválido",
		},
	},
}

func init() {
	for lang, d := range dictionaries {
		addGherkinKeywords(lang, d)
	}
}

// addGherkinKeywords takes step keywords from the Gherkin dialect of the
// language. The wildcard step keyword is left out.
func addGherkinKeywords(lang string, d *Dictionary) {
	dialect := gherkin.DialectsBuiltin().GetDialect(lang)
	if dialect == nil {
		return
	}
	for key, nodeType := range map[string]models.NodeType{
		"given": models.NodeGiven,
		"when":  models.NodeWhen,
		"then":  models.NodeThen,
		"and":   models.NodeAnd,
		"but":   models.NodeBut,
	} {
		for _, kw := range dialect.Keywords[key] {
			kw = strings.TrimSpace(kw)
			if kw == "" || kw == "*" {
				continue
			}
			d.keywords[nodeType] = append(d.keywords[nodeType], kw)
		}
	}
}

// Languages returns the supported languages, sorted.
func Languages() []string {
	langs := make([]string, 0, len(dictionaries))
	for lang := range dictionaries {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DictionaryOf returns the dictionary of a language, falling back to
// English.
func DictionaryOf(language string) *Dictionary {
	if d, ok := dictionaries[strings.ToLower(strings.TrimSpace(language))]; ok {
		return d
	}
	return dictionaries[DefaultLanguage]
}

// Keyword returns the main keyword of a node type.
func (d *Dictionary) Keyword(nodeType models.NodeType) string {
	if kws := d.keywords[nodeType]; len(kws) > 0 {
		return kws[0]
	}
	return string(nodeType)
}

// SplitKeyword finds the keyword a sentence starts with.
func (d *Dictionary) SplitKeyword(content string) (models.NodeType, string, bool) {
	trimmed := strings.TrimLeft(content, " \t")
	for _, kw := range d.sortedKeywords() {
		if len(trimmed) < len(kw.text) || !strings.EqualFold(trimmed[:len(kw.text)], kw.text) {
			continue
		}
		rest := trimmed[len(kw.text):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return kw.nodeType, trimmed[:len(kw.text)], true
		}
	}
	return "", "", false
}

// WithKeyword replaces the keyword a sentence starts with by the main
// keyword of nodeType, or prepends it when there is none.
func (d *Dictionary) WithKeyword(content string, nodeType models.NodeType) string {
	trimmed := strings.TrimLeft(content, " \t")
	if _, kw, ok := d.SplitKeyword(trimmed); ok {
		return d.Keyword(nodeType) + trimmed[len(kw):]
	}
	return d.Keyword(nodeType) + " " + trimmed
}

// Action returns the action a word stands for.
func (d *Dictionary) Action(word string) (string, bool) {
	a, ok := d.actions[strings.ToLower(word)]
	return a, ok
}

func (d *Dictionary) IsConnector(word string) bool {
	return slices.Contains(d.connectors, strings.ToLower(word))
}

// DisplayName returns how a data test case is described in comments.
func (d *Dictionary) DisplayName(c dtc.DataTestCase) string {
	if name, ok := d.dataTestCases[c]; ok {
		return name
	}
	return strings.ToLower(strings.ReplaceAll(c.String(), "_", " "))
}

// ExpectedResult returns the word for valid or invalid data.
func (d *Dictionary) ExpectedResult(invalid bool) string {
	if invalid {
		return d.Invalid
	}
	return d.Valid
}

// sortedKeywords lists keywords longest first so that "Dados" wins over
// "Dado".
func (d *Dictionary) sortedKeywords() []keyword {
	var kws []keyword
	for nodeType, texts := range d.keywords {
		for _, text := range texts {
			kws = append(kws, keyword{text: text, nodeType: nodeType})
		}
	}
	slices.SortFunc(kws, func(a, b keyword) int {
		if c := cmp.Compare(len(b.text), len(a.text)); c != 0 {
			return c
		}
		return cmp.Compare(a.text, b.text)
	})
	return kws
}
