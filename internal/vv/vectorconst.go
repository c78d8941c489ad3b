//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	EXPORTPRECISION    = 6
	NORMALIZETRAINING  = true
	ORTHOGONALTOL      = 1e-6
	BACKTRACKBUDGET    = 250000
	WALKFLOOR          = -1.0 // cosine never goes below -1: every cross edge is walkable
	SOFTMAXSAMPLES     = 10000
	SOFTMAXBATCH       = 100
	SOFTMAXBETA        = 10.0
	DEFAULTRANDOMSEED  = 1
	DEFAULTCHRTHEIGHT  = "1080px"
	DEFAULTCHRTWIDTH   = "1920px"
	GRAPHREPULSION     = 9000
	GRAPHGRAVITY       = 0.1
	GRAPHEDGELENGTH    = 40
	GRAPHSYMBOLSIZE    = 14
	GRAPHEDGEFONTSIZE  = 10
	GRAPHEDGEPRECISION = 3
)
