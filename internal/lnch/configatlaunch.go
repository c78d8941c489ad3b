//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"github.com/Margento/BilingualCorpusJourney/internal/base/str"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
	"gopkg.in/yaml.v3"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// ConfigAtLaunch - read the configuration values from JSON/YAML and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not open '%s'"
		FAIL2 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL3 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		LOADD = "'%s'%s loaded"
	)

	Config = BuildDefaultConfig()
	args := os.Args[1:]

	cf := explicitconfig(args)
	if cf == "" {
		cf = defaultconfigpath()
	}

	y := ""
	if _, e := os.Stat(cf); e != nil {
		Msg.TMI(fmt.Sprintf(FAIL1, cf))
		y = " *not*"
	} else if e = ReadConfigFile(cf, Config); e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL2, cf))
		Msg.PEEK(e.Error())
		Config = BuildDefaultConfig()
		y = " *not*"
	}

	// the log level might be reset by the args, but the file might already have changed it
	UpdateMessageMakerWithConfig(Msg)

	for _, a := range args {
		switch a {
		case "-h":
			help()
			os.Exit(0)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(0)
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(0)
		}
	}

	err := ApplyArgs(Config, args)
	Msg.EC(err)

	UpdateMessageMakerWithConfig(Msg)
	Msg.TMI(fmt.Sprintf(LOADD, cf, y))

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL3, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
	Sanitize(Config)
}

// ApplyArgs - let the command line override the configuration
func ApplyArgs(cfg *str.CurrentConfiguration, args []string) error {
	const (
		MISS = "flag '%s' requires a value"
		BADV = "flag '%s' could not use the value '%s': %w"
	)

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(MISS, args[i])
		}
		return args[i+1], nil
	}

	atoi := func(i int) (int, error) {
		v, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf(BADV, args[i], v, err)
		}
		return n, nil
	}

	for i, a := range args {
		var err error
		switch a {
		case "-bt":
			cfg.Backtrack = true
		case "-bw":
			cfg.BlackAndWhite = true
		case "-c":
			// handled by explicitconfig()
			_, err = next(i)
		case "-ex":
			cfg.ExportAligned, err = next(i)
		case "-gl":
			cfg.LogLevel, err = atoi(i)
		case "-gp":
			cfg.GraphPCA = true
		case "-gr":
			cfg.GraphHTML, err = next(i)
		case "-ma":
			cfg.LangA.MaxPoems, err = atoi(i)
		case "-mb":
			cfg.LangB.MaxPoems, err = atoi(i)
		case "-nc":
			cfg.NoCache = true
		case "-nt":
			cfg.NormalizeTraining = false
		case "-o":
			cfg.Output, err = next(i)
		case "-pa":
			cfg.PairsFile, err = next(i)
		case "-pb":
			cfg.ProgressBar = true
		case "-pc":
			cfg.ProfileCPU = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-ra":
			cfg.LangA.Corpus, err = next(i)
		case "-rb":
			cfg.LangB.Corpus, err = next(i)
		case "-rk":
			cfg.RankTop, err = atoi(i)
		case "-rs":
			var rs int
			rs, err = atoi(i)
			cfg.RandomSeed = int64(rs)
		case "-sa":
			cfg.SeedA, err = next(i)
		case "-sb":
			cfg.SeedB, err = next(i)
		case "-tr":
			cfg.Translate, err = next(i)
		case "-va":
			cfg.LangA.Vectors, err = next(i)
		case "-vb":
			cfg.LangB.Vectors, err = next(i)
		case "-wc":
			cfg.WorkerCount, err = atoi(i)
		case "-wf":
			var v string
			if v, err = next(i); err == nil {
				cfg.WalkFloor, err = strconv.ParseFloat(v, 64)
				if err != nil {
					err = fmt.Errorf(BADV, a, v, err)
				}
			}
		default:
			// do nothing
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadConfigFile - decode a prolix configuration file on top of cfg; YAML if the extension says so, otherwise JSON
func ReadConfigFile(fn string, cfg *str.CurrentConfiguration) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	return nil
}

// WriteConfigFile - write cfg out as a sample configuration file
func WriteConfigFile(fn string, cfg str.CurrentConfiguration) error {
	var content []byte
	var err error

	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		content, err = yaml.Marshal(cfg)
	default:
		content, err = json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fn, content, vv.WRITEPERMS)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.Backtrack = false
	c.BacktrackBudget = vv.BACKTRACKBUDGET
	c.GraphHeight = vv.DEFAULTCHRTHEIGHT
	c.GraphWidth = vv.DEFAULTCHRTWIDTH
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.NoCache = !vv.USECACHE
	c.NormalizeTraining = vv.NORMALIZETRAINING
	c.ProgressBar = vv.PROGRESSBARON
	c.RandomSeed = vv.DEFAULTRANDOMSEED
	c.RankTop = vv.DEFAULTRANKTOP
	c.SoftmaxBatch = vv.SOFTMAXBATCH
	c.SoftmaxBeta = vv.SOFTMAXBETA
	c.SoftmaxSamples = vv.SOFTMAXSAMPLES
	c.WalkFloor = vv.WALKFLOOR
	c.WorkerCount = runtime.NumCPU()

	c.LangA = str.LanguageConf{
		Tag:      vv.LANGATAG,
		Name:     vv.LANGANAME,
		Vectors:  vv.LANGAVECTORS,
		Corpus:   vv.LANGACORPUS,
		Pattern:  vv.CORPUSPATTERN,
		MaxPoems: vv.MAXPOEMS,
	}

	c.LangB = str.LanguageConf{
		Tag:      vv.LANGBTAG,
		Name:     vv.LANGBNAME,
		Vectors:  vv.LANGBVECTORS,
		Corpus:   vv.LANGBCORPUS,
		Pattern:  vv.CORPUSPATTERN,
		MaxPoems: vv.MAXPOEMS,
	}

	if h, e := os.UserHomeDir(); e == nil {
		c.StopsDir = fmt.Sprintf(vv.CONFIGALTAPTH, h)
		c.TransformCache = fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGTRANSFORMDB
	}

	return &c
}

// Sanitize - an old or partial config file might zero out values that must not be zero
func Sanitize(c *str.CurrentConfiguration) {
	d := BuildDefaultConfig()
	if c.WorkerCount < 1 {
		c.WorkerCount = 1
	}
	if c.RankTop < 1 {
		c.RankTop = d.RankTop
	}
	if c.BacktrackBudget < 1 {
		c.BacktrackBudget = d.BacktrackBudget
	}
	if c.SoftmaxBatch < 1 {
		c.SoftmaxBatch = d.SoftmaxBatch
	}
	if c.SoftmaxSamples < 1 {
		c.SoftmaxSamples = d.SoftmaxSamples
	}
	if c.SoftmaxBeta == 0 {
		c.SoftmaxBeta = d.SoftmaxBeta
	}
	if c.LangA.Pattern == "" {
		c.LangA.Pattern = d.LangA.Pattern
	}
	if c.LangB.Pattern == "" {
		c.LangB.Pattern = d.LangB.Pattern
	}
	if c.GraphHeight == "" {
		c.GraphHeight = d.GraphHeight
	}
	if c.GraphWidth == "" {
		c.GraphWidth = d.GraphWidth
	}
}

func explicitconfig(args []string) string {
	for i, a := range args {
		if a == "-c" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func defaultconfigpath() string {
	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	js := h + vv.CONFIGPROLIX
	if _, e := os.Stat(js); e == nil {
		return js
	}
	ym := h + vv.CONFIGPROLIXYAML
	if _, e := os.Stat(ym); e == nil {
		return ym
	}
	return js
}

func help() {
	const (
		FAIL = "ConfigAtLaunch() failed to execute help text template"
	)
	PrintVersion(*Config)
	PrintBuildInfo(*Config)

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	m := map[string]interface{}{
		"budget":    Config.BacktrackBudget,
		"cachefile": vv.CONFIGTRANSFORMDB,
		"conffile":  vv.CONFIGPROLIX,
		"corpa":     Config.LangA.Corpus,
		"corpb":     Config.LangB.Corpus,
		"cpus":      runtime.NumCPU(),
		"floor":     Config.WalkFloor,
		"home":      h,
		"langa":     Config.LangA.Name,
		"langb":     Config.LangB.Name,
		"loglevel":  Config.LogLevel,
		"maxa":      Config.LangA.MaxPoems,
		"maxb":      Config.LangB.MaxPoems,
		"projurl":   vv.PROJURL,
		"ranktop":   Config.RankTop,
		"rseed":     Config.RandomSeed,
		"veca":      Config.LangA.Vectors,
		"vecb":      Config.LangB.Vectors,
		"workers":   Config.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL)
	}
	fmt.Println(Msg.ColStyle(b.String()))
}
