//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"os"
	"runtime"
	"time"

	"github.com/Margento/BilingualCorpusJourney/internal/base/mm"
	"github.com/Margento/BilingualCorpusJourney/internal/base/str"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
)

func NewMessageMakerConfigured(cc str.CurrentConfiguration) *mm.MessageMaker {
	m := NewMessageMakerWithDefaults()
	m.BW = cc.BlackAndWhite
	m.LLvl = cc.LogLevel
	return m
}

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return &mm.MessageMaker{
		Lnc:  time.Now(),
		BW:   false,
		Clr:  "",
		LLvl: vv.DEFAULTGOLOGLEVEL,
		LNm:  vv.MYNAME,
		SNm:  vv.SHORTNAME,
		Ver:  vv.VERSION,
		Win:  runtime.GOOS == "windows",
		Out:  os.Stdout,
	}
}

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}

// ConfigureMessageMaker - bring a package's MessageMaker in line with cc
func ConfigureMessageMaker(m *mm.MessageMaker, cc str.CurrentConfiguration) {
	m.BW = cc.BlackAndWhite
	m.LLvl = cc.LogLevel
}
