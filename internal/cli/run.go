package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vmsched/internal/metrics"
	"vmsched/internal/report"
	"vmsched/internal/sim"
)

type runOptions struct {
	requestPath string
	format      string
	out         string

	algorithm          string
	vms                int
	vmMips             int64
	vmRam              int64
	vmBw               int64
	vmSize             int64
	cloudlets          int
	cloudletLength     int64
	cloudletPes        int
	cloudletFileSize   int64
	cloudletOutputSize int64
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and print the per-cloudlet report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.buildRequest(cmd, root.cfg.Defaults)
			if err != nil {
				return err
			}

			scope, closer, _, err := metrics.InitMetricScope(root.cfg.Metrics, root.cfg.MetricsPrefix, metricFlushInterval)
			if err != nil {
				return err
			}
			// closing flushes the run's metrics to the configured backend
			defer closer.Close()

			res, err := sim.New(scope, sim.WithLimits(root.cfg.Limits)).Run(req)
			if err != nil {
				return err
			}

			format := report.Format(opts.format)
			if opts.out == "" {
				return report.Write(cmd.OutOrStdout(), res, format)
			}
			return writeReportFile(opts.out, res, format)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.requestPath, "request", "r", "", "YAML or JSON request file (overrides config defaults)")
	f.StringVarP(&opts.format, "format", "o", string(report.FormatTable), "output format (table, csv, json, yaml)")
	f.StringVar(&opts.out, "out", "", "write the report to this file instead of stdout")

	f.StringVarP(&opts.algorithm, "algorithm", "a", "", "scheduling algorithm")
	f.IntVar(&opts.vms, "vms", 0, "number of vms")
	f.Int64Var(&opts.vmMips, "vm-mips", 0, "vm speed in MIPS")
	f.Int64Var(&opts.vmRam, "vm-ram", 0, "vm memory")
	f.Int64Var(&opts.vmBw, "vm-bw", 0, "vm bandwidth")
	f.Int64Var(&opts.vmSize, "vm-size", 0, "vm storage size")
	f.IntVar(&opts.cloudlets, "cloudlets", 0, "number of cloudlets")
	f.Int64Var(&opts.cloudletLength, "cloudlet-length", 0, "cloudlet length in instructions")
	f.IntVar(&opts.cloudletPes, "cloudlet-pes", 0, "cloudlet parallelism units")
	f.Int64Var(&opts.cloudletFileSize, "cloudlet-file-size", 0, "cloudlet input size")
	f.Int64Var(&opts.cloudletOutputSize, "cloudlet-output-size", 0, "cloudlet output size")

	return cmd
}

// writeReportFile renders res into path. A failed close is reported, since
// buffered data may only reach the disk then.
func writeReportFile(path string, res *sim.Result, format report.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return report.Write(f, res, format)
}

// buildRequest starts from the defaults, replaces them with the request file
// if any, then applies explicitly set flags.
func (opts *runOptions) buildRequest(cmd *cobra.Command, defaults sim.Request) (sim.Request, error) {
	req := defaults
	if opts.requestPath != "" {
		var err error
		if req, err = sim.LoadRequest(opts.requestPath); err != nil {
			return req, err
		}
	}

	f := cmd.Flags()
	if f.Changed("algorithm") {
		req.SchedulingAlgorithm = opts.algorithm
	}
	if f.Changed("vms") {
		req.NumberOfVms = opts.vms
		req.VMs = nil
	}
	if f.Changed("vm-mips") {
		req.VMMips = opts.vmMips
	}
	if f.Changed("vm-ram") {
		req.VMRam = opts.vmRam
	}
	if f.Changed("vm-bw") {
		req.VMBw = opts.vmBw
	}
	if f.Changed("vm-size") {
		req.VMSize = opts.vmSize
	}
	if f.Changed("cloudlets") {
		req.NumberOfCloudlets = opts.cloudlets
		req.Cloudlets = nil
	}
	if f.Changed("cloudlet-length") {
		req.CloudletLength = opts.cloudletLength
	}
	if f.Changed("cloudlet-pes") {
		req.CloudletPes = opts.cloudletPes
	}
	if f.Changed("cloudlet-file-size") {
		req.CloudletFileSize = opts.cloudletFileSize
	}
	if f.Changed("cloudlet-output-size") {
		req.CloudletOutputSize = opts.cloudletOutputSize
	}
	return req, nil
}
