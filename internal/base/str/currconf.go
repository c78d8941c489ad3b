//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// LanguageConf - everything needed to read one side of the corpus
type LanguageConf struct {
	Tag      string `yaml:"tag"`
	Name     string `yaml:"name"`
	Vectors  string `yaml:"vectors"`
	Corpus   string `yaml:"corpus"`
	Pattern  string `yaml:"pattern"`
	MaxPoems int    `yaml:"maxpoems"` // 0: no cap
}

type CurrentConfiguration struct {
	BlackAndWhite     bool         `yaml:"blackandwhite"`
	Backtrack         bool         `yaml:"backtrack"`
	BacktrackBudget   int          `yaml:"backtrackbudget"`
	ExportAligned     string       `yaml:"exportaligned"`
	GraphHTML         string       `yaml:"graphhtml"`
	GraphPCA          bool         `yaml:"graphpca"`
	GraphHeight       string       `yaml:"graphheight"`
	GraphWidth        string       `yaml:"graphwidth"`
	LangA             LanguageConf `yaml:"langa"` // the target space
	LangB             LanguageConf `yaml:"langb"` // aligned into LangA
	LogLevel          int          `yaml:"loglevel"`
	NoCache           bool         `yaml:"nocache"`
	NormalizeTraining bool         `yaml:"normalizetraining"`
	Output            string       `yaml:"output"`
	PairsFile         string       `yaml:"pairsfile"`
	ProfileCPU        bool         `yaml:"profilecpu"`
	ProfileMEM        bool         `yaml:"profilemem"`
	ProgressBar       bool         `yaml:"progressbar"`
	RandomSeed        int64        `yaml:"randomseed"`
	RankTop           int          `yaml:"ranktop"`
	SeedA             string       `yaml:"seeda"`
	SeedB             string       `yaml:"seedb"`
	SoftmaxBatch      int          `yaml:"softmaxbatch"`
	SoftmaxBeta       float64      `yaml:"softmaxbeta"`
	SoftmaxSamples    int          `yaml:"softmaxsamples"`
	StopsDir          string       `yaml:"stopsdir"` // where the per-language stopword files live
	TransformCache    string       `yaml:"transformcache"`
	Translate         string       `yaml:"-"`
	WalkFloor         float64      `yaml:"walkfloor"` // cross edges lighter than this are never walked
	WorkerCount       int          `yaml:"workercount"`
}
