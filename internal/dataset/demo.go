package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	demoRegions  = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-south-1"}
	demoStatuses = []string{"running", "stopped", "pending"}
	demoKinds    = []string{"api", "worker", "cache", "db", "queue"}

	// demoEpoch keeps generated ids stable for a given seed.
	demoEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Synthetic generates n deterministic demo records. Ids are ULIDs so they
// sort in generation order. Every third record carries no meta and cannot
// be expanded under DemoSchema.
func Synthetic(n int, seed int64) []Record {
	//nolint:gosec // Demo data only.
	rng := rand.New(rand.NewSource(seed))
	entropy := ulid.Monotonic(rng, 0)

	out := make([]Record, n)
	for i := range out {
		ts := ulid.Timestamp(demoEpoch.Add(time.Duration(i) * time.Second))
		kind := demoKinds[rng.Intn(len(demoKinds))]
		rec := Record{
			"id":     ulid.MustNew(ts, entropy).String(),
			"name":   fmt.Sprintf("%s-%04d", kind, i),
			"region": demoRegions[rng.Intn(len(demoRegions))],
			"status": demoStatuses[rng.Intn(len(demoStatuses))],
			"cost":   json.Number(strconv.FormatFloat(float64(rng.Intn(100000))/100, 'f', 2, 64)),
		}
		if i%3 != 0 {
			rec["meta"] = map[string]any{
				"kind":     kind,
				"replicas": json.Number(strconv.Itoa(1 + rng.Intn(8))),
				"tags":     []any{"team-" + strconv.Itoa(i%7), kind},
			}
		}
		out[i] = rec
	}
	return out
}

// DemoSchema is the schema used for Synthetic records.
func DemoSchema() Schema {
	return Schema{
		IDField:         DefaultIDField,
		ExpandableField: "meta",
		Columns: []ColumnSpec{
			{ID: "_select", Kind: "selection", Width: selectionWidth, Pin: "left"},
			{ID: "name", Title: "Name", Weight: 2, MinWidth: 12},
			{ID: "id", Title: "ID", Width: 28},
			{ID: "region", Title: "Region", Width: 12},
			{ID: "status", Title: "Status", Width: 10},
			{ID: "cost", Title: "Cost", Width: 10},
			{ID: "_actions", Title: "Actions", Kind: "actions", Width: 16, Actions: []string{"copy", "open"}},
			{ID: "_expand", Kind: "expander", Width: expanderWidth, Pin: "right"},
		},
	}
}
