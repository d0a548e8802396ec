package sched

import "github.com/pkg/errors"

// VMID uniquely identifies a virtual machine within a run.
type VMID int

// VM is a simulated processing resource. Only MIPS affects the cost model.
type VM struct {
	ID   VMID
	MIPS int64 // instructions per second, always positive
	RAM  int64
	BW   int64
	Size int64
}

// NewVM creates a VM, rejecting a non-positive speed.
func NewVM(id VMID, mips, ram, bw, size int64) (VM, error) {
	if mips <= 0 {
		return VM{}, errors.Errorf("vm %d: mips must be positive, got %d", id, mips)
	}
	return VM{
		ID:   id,
		MIPS: mips,
		RAM:  ram,
		BW:   bw,
		Size: size,
	}, nil
}
