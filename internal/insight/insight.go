// Package insight derives inactivity insights from a record log.
package insight

import (
	"fmt"
	"time"

	"github.com/haldor/keepintouch/internal/models"
)

// Threshold is how long a sender must be silent before being flagged.
const Threshold = 7 * 24 * time.Hour

// Analyzer flags senders that have gone quiet.
type Analyzer struct {
	verb string
	now  func() time.Time
}

// New creates an Analyzer. verb is the past participle used in the
// insight template ("called", "emailed", "texted").
func New(verb string, now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{verb: verb, now: now}
}

// Analyze scans records once, keeping the most recent timestamp per
// sender (strictly greater wins, so the first occurrence stands on
// ties), and emits one insight string for every sender whose latest
// record is older than Threshold. Output order follows the order
// senders were first encountered in the scan.
func (a *Analyzer) Analyze(records []models.Record) ([]string, error) {
	last := make(map[string]time.Time, len(records))
	var order []string

	for i, rec := range records {
		sender, ok := rec.Sender()
		if !ok {
			return nil, fmt.Errorf("insight: record %d has no sender", i)
		}
		ts, err := rec.Timestamp()
		if err != nil {
			return nil, fmt.Errorf("insight: record %d: %w", i, err)
		}
		prev, seen := last[sender]
		if !seen {
			order = append(order, sender)
			last[sender] = ts
		} else if ts.After(prev) {
			last[sender] = ts
		}
	}

	now := a.now()
	insights := []string{}
	for _, sender := range order {
		if now.Sub(last[sender]) > Threshold {
			insights = append(insights,
				fmt.Sprintf("%s hasn't %s in a while. Check on them!", sender, a.verb))
		}
	}
	return insights, nil
}
