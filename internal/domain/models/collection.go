package models

// OutcomeStatus is the per-entity result of a collection pass.
type OutcomeStatus string

const (
	OutcomeOK      OutcomeStatus = "ok"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// EntityOutcome records what happened to one registry entry.
type EntityOutcome struct {
	StockCode string
	Name      string
	CorpCode  string
	Status    OutcomeStatus
	Fetched   int
	Retained  int
	Err       error
}

// Collection is the collector's output: retained records in registry order,
// then source order, plus one outcome per registry entry.
type Collection struct {
	WindowStart string
	Records     []Record
	Outcomes    []EntityOutcome
}

func (c *Collection) count(s OutcomeStatus) int {
	n := 0
	for _, o := range c.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

func (c *Collection) Succeeded() int { return c.count(OutcomeOK) }
func (c *Collection) Skipped() int   { return c.count(OutcomeSkipped) }
func (c *Collection) Failed() int    { return c.count(OutcomeFailed) }

// Fetched is the number of records returned by the source before window filtering.
func (c *Collection) Fetched() int {
	n := 0
	for _, o := range c.Outcomes {
		n += o.Fetched
	}
	return n
}

// Failures returns the outcomes that carry an error.
func (c *Collection) Failures() []EntityOutcome {
	var out []EntityOutcome
	for _, o := range c.Outcomes {
		if o.Status == OutcomeFailed {
			out = append(out, o)
		}
	}
	return out
}
