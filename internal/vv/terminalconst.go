//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the  
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or 
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2022-24"
	PROJAUTH = "E. Gunderson"
	PROJURL  = "https://github.com/Margento/BilingualCorpusJourney"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-btC0          walk with backtracking instead of the greedy walk [C6budgetC0: C3{{.budget}}C0 expansions]
   C1-bwC0          disable color output in the console
   C1-cC0 C2{path}C0    read the configuration from this JSON or YAML file instead of "C3{{.home}}{{.conffile}}C0"
   C1-exC0 C2{path}C0   export the aligned C3{{.langb}}C0 space to this vector file
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.loglevel}}C0]
   C1-gpC0          place the graph nodes by principal components instead of the force layout
   C1-grC0 C2{path}C0   write the itinerary graph as an HTML page to this file
   C1-hC0           print this help information
   C1-maC0 C2{num}C0    cap the number of C3{{.langa}}C0 poems (C10C0 = no cap) [C6currentC0: C3{{.maxa}}C0]
   C1-mbC0 C2{num}C0    cap the number of C3{{.langb}}C0 poems (C10C0 = no cap) [C6currentC0: C3{{.maxb}}C0]
   C1-ncC0          do not read or write the transform cache "C3{{.home}}{{.cachefile}}C0"
   C1-ntC0          do not normalize the training matrices before learning the transform
   C1-oC0 C2{path}C0    also write the journey poem to this file
   C1-paC0 C2{path}C0   read the bilingual dictionary from this file instead of using lexical overlap
   C1-pbC0          show progress bars
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-raC0 C2{path}C0   C3{{.langa}}C0 corpus directory [C6currentC0: C3{{.corpa}}C0]
   C1-rbC0 C2{path}C0   C3{{.langb}}C0 corpus directory [C6currentC0: C3{{.corpb}}C0]
   C1-rkC0 C2{num}C0    how many entries to show in each ranking [C6currentC0: C3{{.ranktop}}C0]
   C1-rsC0 C2{num}C0    random seed for sampling [C6currentC0: C3{{.rseed}}C0]
   C1-saC0 C2{label}C0  label of the C3{{.langa}}C0 poem that opens the journey
   C1-sbC0 C2{label}C0  label of the C3{{.langb}}C0 poem that follows it
   C1-trC0 C2{word}C0   translate a C3{{.langb}}C0 word into C3{{.langa}}C0 and exit
   C1-vC0           print version info and exit
   C1-vaC0 C2{path}C0   C3{{.langa}}C0 vector file [C6currentC0: C3{{.veca}}C0]
   C1-vbC0 C2{path}C0   C3{{.langb}}C0 vector file [C6currentC0: C3{{.vecb}}C0]
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
   C1-wfC0 C2{num}C0    never walk a cross edge lighter than this [C6currentC0: C3{{.floor}}C0]

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         See the sample configuration files at
             C3{{.projurl}}C0
`
)
