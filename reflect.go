// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reactor is the interface that custom processes built using reflection must
// implement. See MakeProcess.
//
type Reactor interface {
	React(c *Context)
}

var signalType = reflect.TypeOf((*Signal)(nil))

// MakeProcess wraps a Reactor into a process. r must be a pointer to a struct.
// Its *Signal fields are filled from signals and identified by field tags:
//
//	`hw:"in"`      the process reacts to any change of the signal
//	`hw:"posedge"` the process reacts to rising edges of the signal
//	`hw:"negedge"` the process reacts to falling edges of the signal
//	`hw:"out"`     the signal is only written to
//
// By default, the signal name is the field name in lowercase. A specific name
// can be forced by adding it in the tag: `hw:"in,sig_name"`.
//
// Buses of signals are arrays of *Signal. Element i of a bus named "a" is the
// signal named "a[i]".
//
// A process without edge sensitive fields is combinational: it also reacts
// once at time 0, in the first delta cycle.
//
func MakeProcess(r Reactor, signals map[string]*Signal) (*Process, error) {
	v := reflect.ValueOf(r)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrConfiguration, "unsupported type %T", r)
	}
	e := v.Elem()
	typ := e.Type()

	var sens Sensitivity
	comb := true
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		name := strings.ToLower(f.Name)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		tv := strings.Split(tag, ",")
		switch len(tv) {
		case 2:
			if tv[1] != "" {
				name = tv[1]
			}
			fallthrough
		case 1:
		default:
			return nil, errors.Wrapf(ErrConfiguration, "unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		var kind TriggerKind
		switch tv[0] {
		case "in":
			kind = OnChange
		case "posedge":
			kind, comb = OnPosedge, false
		case "negedge":
			kind, comb = OnNegedge, false
		case "out":
			kind = OnDelay
		default:
			return nil, errors.Wrapf(ErrConfiguration, "unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}

		fv := e.Field(i)
		if !fv.CanSet() {
			return nil, errors.Wrapf(ErrConfiguration, "unexported field %q in %q", f.Name, typ.Name())
		}
		var bound []*Signal
		switch ft := f.Type; {
		case ft == signalType:
			s := signals[name]
			if s == nil {
				return nil, errors.Wrapf(ErrConfiguration, "unknown signal %q for field %q in %q", name, f.Name, typ.Name())
			}
			fv.Set(reflect.ValueOf(s))
			bound = append(bound, s)
		case ft.Kind() == reflect.Array && ft.Elem() == signalType:
			// bus
			for j := 0; j < ft.Len(); j++ {
				sn := name + "[" + strconv.Itoa(j) + "]"
				s := signals[sn]
				if s == nil {
					return nil, errors.Wrapf(ErrConfiguration, "unknown signal %q for field %q in %q", sn, f.Name, typ.Name())
				}
				fv.Index(j).Set(reflect.ValueOf(s))
				bound = append(bound, s)
			}
		default:
			return nil, errors.Wrapf(ErrConfiguration, "unsupported type %q for field %q in %q", f.Type, f.Name, typ.Name())
		}
		if kind == OnDelay {
			continue
		}
		for _, s := range bound {
			sens = append(sens, Trigger{Kind: kind, Signal: s})
		}
	}
	if len(sens) == 0 {
		return nil, errors.Wrapf(ErrConfiguration, "no input signals in %q", typ.Name())
	}

	start := sens
	if comb {
		start = Sensitivity{Delay(0)}
	}
	return NewProcess(typ.Name(), start, func(c *Context) Sensitivity {
		r.React(c)
		return sens
	}), nil
}
