package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	yaml "github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"vmsched/internal/sim"
)

// Format selects how a result is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON, FormatYAML}

var header = []string{"cloudlet_id", "vm_id", "start_time", "finish_time", "status", "execution_time", "cost"}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 6, 64) }

// Write renders res to w in the given format.
func Write(w io.Writer, res *sim.Result, format Format) error {
	switch format {
	case FormatTable:
		return WriteTable(w, res)
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(res), "encode json")
	case FormatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

// WriteTable renders one row per outcome and a totals footer.
func WriteTable(w io.Writer, res *sim.Result) error {
	if _, err := fmt.Fprintf(w, "Algorithm: %s  Run: %s\n", res.SchedulingAlgorithm, res.RunID); err != nil {
		return errors.Wrap(err, "write table title")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, o := range res.CloudletResults {
		table.Append([]string{
			strconv.Itoa(int(o.TaskID)),
			strconv.Itoa(int(o.VMID)),
			ftoa(o.StartTime),
			ftoa(o.FinishTime),
			o.Status,
			ftoa(o.ExecutionTime),
			ftoa(o.Cost),
		})
	}
	table.SetFooter([]string{"", "", "", "makespan " + ftoa(res.Makespan), "total", ftoa(res.TotalExecutionTime), ftoa(res.TotalCost)})
	table.Render()
	return nil
}

// WriteCSV writes a header row followed by one record per outcome.
func WriteCSV(w io.Writer, res *sim.Result) error {
	cw := csv.NewWriter(w)

	// write header
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, o := range res.CloudletResults {
		rec := []string{
			strconv.Itoa(int(o.TaskID)),
			strconv.Itoa(int(o.VMID)),
			ftoa(o.StartTime),
			ftoa(o.FinishTime),
			o.Status,
			ftoa(o.ExecutionTime),
			ftoa(o.Cost),
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "write csv record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
