// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats estimates how much stronger one player is than the other
// from the win-draw-loss record of a series of games. With fair dice the
// estimates should hover around zero.
package stats

import "math"

// Elo returns the likely elo difference of the first player along with its
// p < 0.05 lower and upper bounds. An empty record returns zeros.
func Elo(ws, ds, ls int) (lower float64, elo float64, upper float64) {
	n := float64(ws + ds + ls) // total number of games
	if n == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / n // measured win probability
	d := float64(ds) / n // measured draw probability
	l := float64(ls) / n // measured loss probability

	// empirical mean score of the first player
	mu := w + d/2

	// standard error of the mean score
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(n)

	return scoreToElo(mu + phiInv(0.025)*sigma),
		scoreToElo(mu),
		scoreToElo(mu + phiInv(0.975)*sigma)
}

// ErrorMargin returns the half-width of the interval returned by Elo.
func ErrorMargin(lower, elo, upper float64) float64 {
	return math.Abs(math.Max(upper-elo, elo-lower))
}

// SPRT returns the log-likelihood ratio of the elo1 hypothesis against the
// elo0 hypothesis given the record of the first player. A Dirichlet(0.5,
// 0.5, 0.5) prior keeps the ratio finite for lopsided records.
func SPRT(ws, ds, ls int, elo0, elo1 float64) (llr float64) {
	w := float64(ws) + 0.5
	d := float64(ds) + 0.5
	l := float64(ls) + 0.5

	n := w + d + l
	_, dlo := wdlToElo(w/n, d/n, l/n)

	w0, d0, l0 := eloToWDL(elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(elo1, dlo) // elo1 WDL probabilities

	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// StoppingBounds returns the llr bounds of an SPRT with the given type I
// and type II error probabilities. The test accepts H0 once the llr drops
// to lower and H1 once it reaches upper.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return 400 * math.Log10(x/(1-x))
	}
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to its bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
