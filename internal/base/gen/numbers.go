//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// PrettyInt - 1234567 --> "1,234,567"
func PrettyInt(n int) string {
	return printer.Sprintf("%d", n)
}

// PrettyFloat - fixed precision with thousands separators
func PrettyFloat(f float64, prec int) string {
	return printer.Sprintf("%.*f", prec, f)
}
