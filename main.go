//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/Margento/BilingualCorpusJourney/internal/jrny"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
	"github.com/pkg/profile"
)

var Msg = lnch.NewMessageMakerWithDefaults()

func main() {
	// go tool pprof --pdf ./BilingualCorpusJourney /var/folders/.../cpu.pprof > profile.pdf
	lnch.ConfigAtLaunch()
	lnch.UpdateMessageMakerWithConfig(Msg)

	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	} else if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	lnch.PrintVersion(*lnch.Config)
	Msg.MAND(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJURL))

	_, err := jrny.Run(*lnch.Config)
	Msg.EC(err)
}
