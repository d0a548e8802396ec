package sim

import (
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"vmsched/internal/sched"
)

// ErrInvalidRequest is the cause of every validation failure.
var ErrInvalidRequest = errors.New("invalid request")

// VMSpec describes one vm of an explicit pool.
type VMSpec struct {
	MIPS int64 `json:"mips" yaml:"mips"`
	RAM  int64 `json:"ram" yaml:"ram"`
	BW   int64 `json:"bw" yaml:"bw"`
	Size int64 `json:"size" yaml:"size"`
}

// CloudletSpec describes one task of an explicit batch.
type CloudletSpec struct {
	Length     int64 `json:"length" yaml:"length"`
	PEs        int   `json:"pes" yaml:"pes"`
	FileSize   int64 `json:"fileSize" yaml:"fileSize"`
	OutputSize int64 `json:"outputSize" yaml:"outputSize"`
}

// Request is one simulation run as received from a caller.
// The count+template fields build a homogeneous pool and batch; a non-empty
// VMs or Cloudlets list replaces the corresponding template.
type Request struct {
	NumberOfVms int   `json:"numberOfVms" yaml:"numberOfVms"`
	VMMips      int64 `json:"vmMips" yaml:"vmMips"`
	VMRam       int64 `json:"vmRam" yaml:"vmRam"`
	VMBw        int64 `json:"vmBw" yaml:"vmBw"`
	VMSize      int64 `json:"vmSize" yaml:"vmSize"`

	NumberOfCloudlets  int   `json:"numberOfCloudlets" yaml:"numberOfCloudlets"`
	CloudletLength     int64 `json:"cloudletLength" yaml:"cloudletLength"`
	CloudletPes        int   `json:"cloudletPes" yaml:"cloudletPes"`
	CloudletFileSize   int64 `json:"cloudletFileSize" yaml:"cloudletFileSize"`
	CloudletOutputSize int64 `json:"cloudletOutputSize" yaml:"cloudletOutputSize"`

	SchedulingAlgorithm string `json:"schedulingAlgorithm" yaml:"schedulingAlgorithm"`

	VMs       []VMSpec       `json:"vms,omitempty" yaml:"vms,omitempty"`
	Cloudlets []CloudletSpec `json:"cloudlets,omitempty" yaml:"cloudlets,omitempty"`
}

// LoadRequest reads a request from a YAML (or JSON) file.
func LoadRequest(path string) (Request, error) {
	var req Request
	data, err := os.ReadFile(path)
	if err != nil {
		return req, errors.Wrapf(err, "read request %s", path)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, errors.Wrapf(err, "decode request %s", path)
	}
	return req, nil
}

// Limits caps the size of a single run. Sufferage costs O(cloudlets² × vms),
// so the defaults keep one request within a few seconds of CPU.
type Limits struct {
	MaxVMs       int `json:"max_vms" yaml:"max_vms"`
	MaxCloudlets int `json:"max_cloudlets" yaml:"max_cloudlets"`
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxVMs:       512,
		MaxCloudlets: 2048,
	}
}

// Validate rejects requests that would leave tasks unassigned, break the
// cost model or exceed DefaultLimits. A request without tasks is valid.
func (r Request) Validate() error {
	_, _, err := r.build(DefaultLimits())
	return err
}

// build creates the vm pool and the task batch, or fails with ErrInvalidRequest.
// Counts are checked against lim before anything is allocated.
func (r Request) build(lim Limits) ([]sched.VM, []sched.Task, error) {
	nVMs, nCloudlets := r.NumberOfVms, r.NumberOfCloudlets
	if len(r.VMs) > 0 {
		nVMs = len(r.VMs)
	}
	if len(r.Cloudlets) > 0 {
		nCloudlets = len(r.Cloudlets)
	}

	if nVMs <= 0 {
		return nil, nil, errors.Wrapf(ErrInvalidRequest, "numberOfVms must be positive, got %d", nVMs)
	}
	if nVMs > lim.MaxVMs {
		return nil, nil, errors.Wrapf(ErrInvalidRequest, "numberOfVms must not exceed %d, got %d", lim.MaxVMs, nVMs)
	}
	if nCloudlets < 0 {
		return nil, nil, errors.Wrapf(ErrInvalidRequest, "numberOfCloudlets must not be negative, got %d", nCloudlets)
	}
	if nCloudlets > lim.MaxCloudlets {
		return nil, nil, errors.Wrapf(ErrInvalidRequest, "numberOfCloudlets must not exceed %d, got %d", lim.MaxCloudlets, nCloudlets)
	}

	vms, err := r.buildVMs()
	if err != nil {
		return nil, nil, errors.Wrap(ErrInvalidRequest, err.Error())
	}
	tasks, err := r.buildTasks()
	if err != nil {
		return nil, nil, errors.Wrap(ErrInvalidRequest, err.Error())
	}
	return vms, tasks, nil
}

func (r Request) vmSpecs() []VMSpec {
	if len(r.VMs) > 0 {
		return r.VMs
	}
	specs := make([]VMSpec, r.NumberOfVms)
	for i := range specs {
		specs[i] = VMSpec{MIPS: r.VMMips, RAM: r.VMRam, BW: r.VMBw, Size: r.VMSize}
	}
	return specs
}

func (r Request) cloudletSpecs() []CloudletSpec {
	if len(r.Cloudlets) > 0 {
		return r.Cloudlets
	}
	if r.NumberOfCloudlets <= 0 {
		return nil
	}
	specs := make([]CloudletSpec, r.NumberOfCloudlets)
	for i := range specs {
		specs[i] = CloudletSpec{
			Length:     r.CloudletLength,
			PEs:        r.CloudletPes,
			FileSize:   r.CloudletFileSize,
			OutputSize: r.CloudletOutputSize,
		}
	}
	return specs
}

func (r Request) buildVMs() ([]sched.VM, error) {
	specs := r.vmSpecs()
	vms := make([]sched.VM, 0, len(specs))
	for i, s := range specs {
		vm, err := sched.NewVM(sched.VMID(i), s.MIPS, s.RAM, s.BW, s.Size)
		if err != nil {
			return nil, err
		}
		vms = append(vms, vm)
	}
	return vms, nil
}

func (r Request) buildTasks() ([]sched.Task, error) {
	specs := r.cloudletSpecs()
	tasks := make([]sched.Task, 0, len(specs))
	for i, s := range specs {
		t, err := sched.NewTask(sched.TaskID(i), s.Length, s.PEs, s.FileSize, s.OutputSize)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
