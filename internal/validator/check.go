package validator

import "fmt"

// Verdict is the outcome of validating one rune of an input.
type Verdict struct {
	// Index is the rune index within the input.
	Index int `json:"index"`
	// Offset is the byte offset within the input.
	Offset int `json:"offset"`
	// Char is the rune as a string.
	Char string `json:"char"`
	// CodePoint is the rune formatted as U+XXXX.
	CodePoint string `json:"code_point"`
	// Accepted reports whether the set accepted the rune.
	Accepted bool `json:"accepted"`
}

// CheckResult collects the verdicts for every rune of an input.
type CheckResult struct {
	Set      string    `json:"set,omitempty"`
	Input    string    `json:"input"`
	Verdicts []Verdict `json:"verdicts"`
}

// Check validates each rune of text with set. Runes are judged
// independently; no verdict depends on its neighbours. Invalid UTF-8 bytes
// are judged as utf8.RuneError.
func Check(set *Set, text string) *CheckResult {
	res := &CheckResult{Input: text, Verdicts: []Verdict{}}
	i := 0
	for off, r := range text {
		res.Verdicts = append(res.Verdicts, Verdict{
			Index:     i,
			Offset:    off,
			Char:      string(r),
			CodePoint: fmt.Sprintf("%U", r),
			Accepted:  set.Validate(r),
		})
		i++
	}
	return res
}

// Accepted reports whether every rune was accepted. An empty input is accepted.
func (c *CheckResult) Accepted() bool {
	return len(c.Rejected()) == 0
}

// Rejected returns the verdicts of rejected runes.
func (c *CheckResult) Rejected() []Verdict {
	if c == nil {
		return nil
	}
	var out []Verdict
	for _, v := range c.Verdicts {
		if !v.Accepted {
			out = append(out, v)
		}
	}
	return out
}
