package corpus

import "slices"

// Tokenizer is the dictionary surface a corpus is checked against.
type Tokenizer interface {
	Split(input string, keepFormatting bool) []string
	SplitRelative(input string, keepFormatting bool) []string
}

// Failure records a case whose output differed from the expectation.
type Failure struct {
	Case Case
	Got  []string
}

// Metrics holds evaluation results.
type Metrics struct {
	Passed   int
	Failed   int
	Failures []Failure
}

// Total returns the number of evaluated cases.
func (m Metrics) Total() int {
	return m.Passed + m.Failed
}

// PassRate returns the fraction of cases that passed, or 1 for an empty run.
func (m Metrics) PassRate() float64 {
	if m.Total() == 0 {
		return 1
	}
	return float64(m.Passed) / float64(m.Total())
}

// Evaluate runs split over every case and compares the output exactly.
func Evaluate(split func(string) []string, cases []Case) Metrics {
	var m Metrics
	for _, c := range cases {
		got := split(c.Input)
		if slices.Equal(got, c.Want) {
			m.Passed++
			continue
		}
		m.Failed++
		m.Failures = append(m.Failures, Failure{Case: c, Got: got})
	}
	return m
}

// Run evaluates c with the operation its header selects.
func Run(tok Tokenizer, c *Corpus) Metrics {
	split := func(s string) []string { return tok.Split(s, false) }
	switch c.Header.Mode {
	case ModeSplitKeep:
		split = func(s string) []string { return tok.Split(s, true) }
	case ModeRelative:
		split = func(s string) []string { return tok.SplitRelative(s, false) }
	}
	return Evaluate(split, c.Cases)
}
