// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package co2montest provides scripted implementations of co2mon.Transport
// to test the driver without sensor hardware.
package co2montest

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lnicola/co2mon"
)

// IO registers one expected HID operation: a feature report write when W is
// set, an input report read otherwise.
type IO struct {
	// W is the expected feature report payload, report id included.
	W []byte
	// R is the frame returned by a read.
	R []byte
	// Delay is how long the device takes to produce the frame. A delay
	// longer than the caller's read timeout makes the read time out with
	// 0 bytes transferred, like real hidapi.
	Delay time.Duration
	// Err is returned instead of completing the operation.
	Err error
}

// Playback implements co2mon.Transport and plays back a recorded sequence
// of operations.
//
// A diverging operation panics, so a misbehaving driver fails loudly. Set
// DontPanic to return errors instead; tests exercising failure paths want
// that.
type Playback struct {
	sync.Mutex
	Ops       []IO
	DontPanic bool
	count     int
}

func (p *Playback) SendFeatureReport(b []byte) (int, error) {
	p.Lock()
	defer p.Unlock()
	op, err := p.next("SendFeatureReport")
	if err != nil {
		return 0, err
	}
	if op.W == nil {
		return 0, p.fail("co2montest: expected a read, got a feature report")
	}
	if op.Err != nil {
		return 0, op.Err
	}
	if !bytes.Equal(op.W, b) {
		return 0, p.fail(fmt.Sprintf("co2montest: unexpected feature report %#v, expected %#v", b, op.W))
	}
	return len(b), nil
}

func (p *Playback) ReadWithTimeout(b []byte, timeout time.Duration) (int, error) {
	p.Lock()
	defer p.Unlock()
	op, err := p.next("ReadWithTimeout")
	if err != nil {
		return 0, err
	}
	if op.W != nil {
		return 0, p.fail("co2montest: expected a feature report, got a read")
	}
	if op.Delay > 0 && timeout >= 0 && op.Delay > timeout {
		time.Sleep(timeout)
		return 0, nil
	}
	time.Sleep(op.Delay)
	if op.Err != nil {
		return 0, op.Err
	}
	return copy(b, op.R), nil
}

// Close verifies that every registered operation was consumed.
func (p *Playback) Close() error {
	p.Lock()
	defer p.Unlock()
	if p.count != len(p.Ops) {
		return p.fail(fmt.Sprintf("co2montest: expected %d operations, consumed %d", len(p.Ops), p.count))
	}
	return nil
}

func (p *Playback) next(name string) (IO, error) {
	if p.count >= len(p.Ops) {
		return IO{}, p.fail(fmt.Sprintf("co2montest: unexpected %s call #%d", name, p.count))
	}
	op := p.Ops[p.count]
	p.count++
	return op, nil
}

func (p *Playback) fail(msg string) error {
	if p.DontPanic {
		return errors.New(msg)
	}
	panic(msg)
}

// Record wraps a live transport and appends every operation to Ops, to
// capture fixtures from real hardware for later playback.
type Record struct {
	sync.Mutex
	// T is the wrapped transport. It can be nil for a write-only log.
	T co2mon.Transport
	// Ops accumulates the operations performed.
	Ops []IO
}

func (r *Record) SendFeatureReport(b []byte) (int, error) {
	r.Lock()
	defer r.Unlock()
	op := IO{W: append([]byte(nil), b...)}
	if r.T == nil {
		r.Ops = append(r.Ops, op)
		return len(b), nil
	}
	n, err := r.T.SendFeatureReport(b)
	op.Err = err
	r.Ops = append(r.Ops, op)
	return n, err
}

func (r *Record) ReadWithTimeout(b []byte, timeout time.Duration) (int, error) {
	r.Lock()
	defer r.Unlock()
	if r.T == nil {
		return 0, errors.New("co2montest: no transport to read from")
	}
	start := time.Now()
	n, err := r.T.ReadWithTimeout(b, timeout)
	r.Ops = append(r.Ops, IO{R: append([]byte(nil), b[:n]...), Delay: time.Since(start), Err: err})
	return n, err
}

func (r *Record) Close() error {
	if r.T != nil {
		return r.T.Close()
	}
	return nil
}

var (
	_ co2mon.Transport = &Playback{}
	_ co2mon.Transport = &Record{}
)
