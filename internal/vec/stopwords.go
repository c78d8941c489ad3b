//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// STOPWORDS
//

// ReadStopConfig - the stopwords for a language: read from dir if the file is there, otherwise write the defaults to it
func ReadStopConfig(tag string, dir string) []string {
	const (
		ERR2 = "ReadStopConfig() failed to parse %s; using the built-in list"
		MSG1 = "ReadStopConfig() wrote stopword configuration file: %s"
		MSG2 = "ReadStopConfig() loaded %d %s stopwords from %s"
		MSG3 = "ReadStopConfig() could not write %s: %s"
	)

	stops := DefaultStops(tag)
	if dir == "" {
		return stops
	}

	fn := filepath.Join(dir, fmt.Sprintf(vv.CONFIGSTOPSTMPL, tag))

	if _, no := os.Stat(fn); no != nil {
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		if err == nil {
			err = os.WriteFile(fn, content, vv.WRITEPERMS)
		}
		if err != nil {
			Msg.WARN(fmt.Sprintf(MSG3, fn, err.Error()))
		} else {
			Msg.PEEK(fmt.Sprintf(MSG1, fn))
		}
		return stops
	}

	loaded, err := os.ReadFile(fn)
	var stp []string
	if err == nil {
		err = json.Unmarshal(loaded, &stp)
	}
	if err != nil {
		Msg.CRIT(fmt.Sprintf(ERR2, fn))
		return stops
	}
	Msg.TMI(fmt.Sprintf(MSG2, len(stp), tag, fn))
	return stp
}

// DefaultStops - the built-in list for a language tag; unknown tags get no stopwords
func DefaultStops(tag string) []string {
	var s []string
	switch tag {
	case "en":
		s = gen.SetSubtraction(append(append([]string{}, EnglishStop...), EnglishPoetryExtra...), EnglishKeep)
	case "fr":
		s = gen.SetSubtraction(FrenchStop, FrenchKeep)
	default:
		return []string{}
	}
	s = gen.Unique(s)
	sort.Strings(s)
	return s
}

var (
	EnglishStop = []string{"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its",
		"itself", "they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this", "that",
		"these", "those", "am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
		"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
		"of", "at", "by", "for", "with", "about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "then", "once", "here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "s", "t", "can", "will", "just", "don", "should", "now", "d", "ll", "m", "o", "re", "ve",
		"y", "ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "ma", "mightn", "mustn",
		"needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn"}
	// EnglishPoetryExtra - archaic and filler words that crowd out content words in verse
	EnglishPoetryExtra = []string{"upon", "also", "hath", "must", "therefore", "doth", "could", "would", "another",
		"much", "like", "since", "without", "though", "often", "either", "even", "shall", "us", "hand", "thee",
		"thou", "thy", "thine", "ye"}
	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{}

	FrenchStop = []string{"au", "aux", "avec", "ce", "ces", "dans", "de", "des", "du", "elle", "en", "et", "eux",
		"il", "ils", "je", "la", "le", "les", "leur", "lui", "ma", "mais", "me", "même", "mes", "moi", "mon", "ne",
		"nos", "notre", "nous", "on", "ou", "par", "pas", "pour", "qu", "que", "qui", "sa", "se", "ses", "son",
		"sur", "ta", "te", "tes", "toi", "ton", "tu", "un", "une", "vos", "votre", "vous", "c", "d", "j", "l", "à",
		"m", "n", "s", "t", "y", "été", "étée", "étées", "étés", "étant", "étante", "étants", "étantes", "suis",
		"es", "est", "sommes", "êtes", "sont", "serai", "seras", "sera", "serons", "serez", "seront", "serais",
		"serait", "serions", "seriez", "seraient", "étais", "était", "étions", "étiez", "étaient", "fus", "fut",
		"fûmes", "fûtes", "furent", "sois", "soit", "soyons", "soyez", "soient", "fusse", "fusses", "fût",
		"fussions", "fussiez", "fussent", "ayant", "ayante", "ayantes", "ayants", "eu", "eue", "eues", "eus", "ai",
		"as", "avons", "avez", "ont", "aurai", "auras", "aura", "aurons", "aurez", "auront", "aurais", "aurait",
		"aurions", "auriez", "auraient", "avais", "avait", "avions", "aviez", "avaient", "eut", "eûmes", "eûtes",
		"eurent", "aie", "aies", "ait", "ayons", "ayez", "aient", "eusse", "eusses", "eût", "eussions", "eussiez",
		"eussent", "cette", "cet", "comme", "si", "ni", "dont", "où", "tout", "tous", "toute", "toutes"}
	// FrenchKeep - members of FrenchStop we will not toss
	FrenchKeep = []string{"été"} // "summer" as well as "been"
)
