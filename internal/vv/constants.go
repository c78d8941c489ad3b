//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Bilingual Corpus Journey"
	SHORTNAME = "BCJ"
	VERSION   = "0.4.2"

	BLACKANDWHITE     = false
	CONFIGALTAPTH     = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGPROLIX      = "bcj-prolix-conf.json"
	CONFIGPROLIXYAML  = "bcj-prolix-conf.yaml"
	CONFIGSTOPSTMPL   = "bcj-stops-%s.json" // %s = language tag
	CONFIGTRANSFORMDB = "bcj-transforms.db"
	DEFAULTGOLOGLEVEL = 0
	DEFAULTRANKTOP    = 10
	JSONINDENT        = "  "
	PROGRESSBARON     = false
	USECACHE          = true
	WRITEPERMS        = 0644

	// language A is the target space: it is never transformed
	LANGATAG     = "en"
	LANGANAME    = "English"
	LANGAVECTORS = "wiki.en.vec"
	LANGACORPUS  = "corpus/en"

	// language B is aligned into language A
	LANGBTAG     = "fr"
	LANGBNAME    = "French"
	LANGBVECTORS = "wiki.fr.vec"
	LANGBCORPUS  = "corpus/fr"

	CORPUSPATTERN = "**/*.txt"
	MAXPOEMS      = 0 // 0 = no cap
)
