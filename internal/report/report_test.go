package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmsched/internal/sched"
	"vmsched/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		RunID: "run-1",
		CloudletResults: []sched.Outcome{
			{TaskID: 0, VMID: 0, StartTime: 0, FinishTime: 0.001, Status: sched.StatusSuccess, ExecutionTime: 0.001, Cost: 0.00001},
			{TaskID: 1, VMID: 1, StartTime: 0, FinishTime: 0.002, Status: sched.StatusSuccess, ExecutionTime: 0.002, Cost: 0.00002},
		},
		TotalExecutionTime:  0.003,
		TotalCost:           0.00003,
		Makespan:            0.002,
		SchedulingAlgorithm: "MIN_MIN",
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatCSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{"1", "1", "0.000000", "0.002000", "SUCCESS", "0.002000", "0.000020"}, records[2])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Algorithm: MIN_MIN")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "0.003000")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatJSON))

	assert.NotContains(t, buf.String(), "run-1")

	var got sim.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	want := *sampleResult()
	want.RunID = ""
	assert.Equal(t, want, got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatYAML))
	assert.Contains(t, buf.String(), "schedulingAlgorithm: MIN_MIN")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTablePropagatesWriteError(t *testing.T) {
	err := Write(failingWriter{}, sampleResult(), FormatTable)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, sampleResult(), Format("xml")))
}
