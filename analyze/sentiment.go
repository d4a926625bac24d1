package analyze

import "strings"

// sentiment classification thresholds on the average signed weight
const (
	sentimentPositiveThreshold = 0.2
	sentimentNegativeThreshold = -0.2
)

// confidence saturates once this many sentiment-bearing words appear
const sentimentSaturationCount = 5

// sentimentWeights is the flattened lexicon: word -> signed weight.
type sentimentWeights map[string]float64

func newSentimentWeights(lexicon SentimentLexicon) sentimentWeights {
	weights := make(sentimentWeights, len(lexicon.Positive)+len(lexicon.Negative)+len(lexicon.Neutral))
	for _, word := range lexicon.Positive {
		weights[word] = 1.0
	}
	for _, word := range lexicon.Negative {
		weights[word] = -1.0
	}
	for _, word := range lexicon.Neutral {
		weights[word] = 0.0
	}
	return weights
}

// analyzeSentiment tokenizes by whitespace and averages the signed
// lexicon weights over sentiment-bearing tokens only. An intensity
// modifier immediately before a sentiment word multiplies its weight,
// so "extremely broken" scores -2 rather than -1. Confidence grows
// with the number of sentiment-bearing words, saturating at 1.
func (a *Analyzer) analyzeSentiment(text string) Sentiment {
	words := strings.Fields(strings.ToLower(text))

	var score float64
	var bearing int

	for i, word := range words {
		weight, ok := a.lexicon[word]
		if !ok || weight == 0 {
			continue
		}

		if i > 0 {
			if modifier, ok := a.modifiers[words[i-1]]; ok {
				weight *= modifier
			}
		}

		score += weight
		bearing++
	}

	average := 0.0
	if bearing > 0 {
		average = score / float64(bearing)
	}

	label := SentimentNeutral
	switch {
	case average > sentimentPositiveThreshold:
		label = SentimentPositive
	case average < sentimentNegativeThreshold:
		label = SentimentNegative
	}

	return Sentiment{
		Label:      label,
		Score:      average,
		Confidence: min(float64(bearing)/sentimentSaturationCount, 1),
		WordCount:  bearing,
	}
}
